package scheduler

import (
	"sync"
	"time"

	"github.com/clientsbook/clientsbook-api/models"
)

// SlotStep is the distance between candidate start times, independent of
// service duration.
const SlotStep = 30 * time.Minute

// DefaultHorizonDays is how far ahead date scans look by default.
const DefaultHorizonDays = 14

// WindowStore provides a master's working slots for one calendar date.
type WindowStore interface {
	ListWindows(providerID uint, date time.Time) ([]models.WorkingSlot, error)
}

// AppointmentStore provides booked appointments and persists new ones.
// ListBooked must return only appointments with status "booked" whose start
// falls in [from, to).
type AppointmentStore interface {
	ListBooked(providerID uint, from, to time.Time) ([]models.Appointment, error)
	Insert(appointment *models.Appointment) error
}

// Engine answers availability questions and commits bookings for a single
// scheduling domain per master. Stores are injected; the engine itself keeps
// no state beyond the per-master commit locks.
type Engine struct {
	windows      WindowStore
	appointments AppointmentStore

	// now is swappable for tests.
	now func() time.Time

	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewEngine(windows WindowStore, appointments AppointmentStore) *Engine {
	return &Engine{
		windows:      windows,
		appointments: appointments,
		now:          time.Now,
		locks:        make(map[uint]*sync.Mutex),
	}
}

// providerLock returns the commit lock for one master, creating it on first
// use. Commits for different masters never contend.
func (e *Engine) providerLock(providerID uint) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[providerID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[providerID] = l
	}
	return l
}

// windowBounds resolves a stored slot's "HH:MM" strings into instants on the
// slot's date.
func windowBounds(slot models.WorkingSlot) (time.Time, time.Time, error) {
	start, err := ParseTimeOfDay(slot.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseTimeOfDay(slot.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start >= end {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	day := DateOf(slot.Date)
	return start.At(day), end.At(day), nil
}

// overlaps is the half-open interval test: [aStart, aEnd) and [bStart, bEnd)
// overlap iff aStart < bEnd and bStart < aEnd. Touching boundaries do not
// count as overlap.
func overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
