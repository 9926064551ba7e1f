package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/clientsbook/clientsbook-api/models"
)

func TestCommitBooking(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "18:00"))
	appts := &fakeAppointmentStore{}
	e := newTestEngine(ws, appts)

	appt := &models.Appointment{ProviderID: master, ClientID: 7, ServiceID: 3, StartTime: at(d, 10, 0)}
	if err := e.CommitBooking(appt, 60); err != nil {
		t.Fatal(err)
	}
	if appt.ID == 0 {
		t.Error("appointment was not persisted")
	}
	if !appt.EndTime.Equal(at(d, 11, 0)) {
		t.Errorf("EndTime = %v, want 11:00", appt.EndTime)
	}
	if appt.Status != models.StatusBooked {
		t.Errorf("Status = %s, want booked", appt.Status)
	}
}

func TestCommitBookingConflictAfterDisplay(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "18:00"))
	appts := &fakeAppointmentStore{}
	e := newTestEngine(ws, appts)

	// The slot looks free when offered.
	ok, err := e.IsBookable(master, at(d, 10, 0), 60)
	if err != nil || !ok {
		t.Fatalf("slot should be offerable, ok=%v err=%v", ok, err)
	}

	// A competing booking lands out of band before confirmation.
	rival := &models.Appointment{ProviderID: master, ClientID: 8, StartTime: at(d, 10, 0)}
	if err := e.CommitBooking(rival, 60); err != nil {
		t.Fatal(err)
	}

	appt := &models.Appointment{ProviderID: master, ClientID: 7, StartTime: at(d, 10, 0)}
	if err := e.CommitBooking(appt, 60); !errors.Is(err, ErrSlotTaken) {
		t.Errorf("CommitBooking after conflicting insert: error = %v, want ErrSlotTaken", err)
	}
	if appt.ID != 0 {
		t.Error("conflicting appointment must not be persisted")
	}
}

func TestCommitBookingSerializesConcurrentCommits(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "18:00"))
	appts := &fakeAppointmentStore{}
	e := newTestEngine(ws, appts)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			appt := &models.Appointment{ProviderID: master, ClientID: uint(i + 1), StartTime: at(d, 10, 0)}
			errs[i] = e.CommitBooking(appt, 60)
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotTaken):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if won != 1 {
		t.Errorf("%d commits won the slot, want exactly 1", won)
	}
	if len(appts.appts) != 1 {
		t.Errorf("%d appointments persisted, want 1", len(appts.appts))
	}
}

func TestCommitBookingRejectsPastStart(t *testing.T) {
	e := newTestEngine(&fakeWindowStore{}, &fakeAppointmentStore{})
	appt := &models.Appointment{ProviderID: master, StartTime: fixedNow.Add(-time.Hour)}
	if err := e.CommitBooking(appt, 60); !errors.Is(err, ErrPastDate) {
		t.Errorf("error = %v, want ErrPastDate", err)
	}
}

func TestCommitBookingInvalidDuration(t *testing.T) {
	e := newTestEngine(&fakeWindowStore{}, &fakeAppointmentStore{})
	appt := &models.Appointment{ProviderID: master, StartTime: fixedNow.Add(time.Hour)}
	if err := e.CommitBooking(appt, 0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("error = %v, want ErrInvalidDuration", err)
	}
}

func TestCommitBookingInsertErrorPropagates(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "18:00"))
	boom := errors.New("insert failed")
	appts := &fakeAppointmentStore{insertErr: boom}
	e := newTestEngine(ws, appts)

	appt := &models.Appointment{ProviderID: master, StartTime: at(d, 10, 0)}
	if err := e.CommitBooking(appt, 60); !errors.Is(err, boom) {
		t.Errorf("error = %v, want the store failure unchanged", err)
	}
}
