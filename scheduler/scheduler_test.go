package scheduler

import (
	"sync"
	"time"

	"github.com/clientsbook/clientsbook-api/models"
)

// fixedNow is the test clock: well before any scheduled window so "past
// instant" filtering stays out of the way unless a test moves it.
var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)

type fakeWindowStore struct {
	slots []models.WorkingSlot
	err   error
}

func (s *fakeWindowStore) ListWindows(providerID uint, date time.Time) ([]models.WorkingSlot, error) {
	if s.err != nil {
		return nil, s.err
	}
	day := DateOf(date)
	var out []models.WorkingSlot
	for _, slot := range s.slots {
		if slot.ProviderID == providerID && DateOf(slot.Date).Equal(day) {
			out = append(out, slot)
		}
	}
	return out, nil
}

type fakeAppointmentStore struct {
	mu        sync.Mutex
	appts     []models.Appointment
	err       error
	insertErr error
}

func (s *fakeAppointmentStore) ListBooked(providerID uint, from, to time.Time) ([]models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Appointment
	for _, a := range s.appts {
		if a.ProviderID != providerID || a.Status != models.StatusBooked {
			continue
		}
		if a.StartTime.Before(from) || !a.StartTime.Before(to) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAppointmentStore) Insert(appointment *models.Appointment) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment.ID = uint(len(s.appts) + 1)
	s.appts = append(s.appts, *appointment)
	return nil
}

func newTestEngine(windows *fakeWindowStore, appts *fakeAppointmentStore) *Engine {
	e := NewEngine(windows, appts)
	e.now = func() time.Time { return fixedNow }
	return e
}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.Local)
}

func at(date time.Time, hh, mm int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hh, mm, 0, 0, date.Location())
}

func openSlot(providerID uint, date time.Time, start, end string) models.WorkingSlot {
	return models.WorkingSlot{ProviderID: providerID, Date: date, StartTime: start, EndTime: end}
}

func blockedSlot(providerID uint, date time.Time, start, end string) models.WorkingSlot {
	return models.WorkingSlot{ProviderID: providerID, Date: date, StartTime: start, EndTime: end, IsBlocked: true}
}

func booked(providerID uint, start time.Time, minutes int) models.Appointment {
	return models.Appointment{
		ProviderID: providerID,
		StartTime:  start,
		EndTime:    start.Add(time.Duration(minutes) * time.Minute),
		Status:     models.StatusBooked,
	}
}
