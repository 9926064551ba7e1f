package scheduler

import (
	"time"

	"github.com/clientsbook/clientsbook-api/models"
)

// CommitBooking turns an offered slot into a persisted appointment. The
// admissibility check is re-run unconditionally under the master's commit
// lock, so two confirmations for the same master cannot interleave between
// check and insert. A slot that stopped being admissible surfaces as
// ErrSlotTaken; the caller should re-offer fresh slots rather than retry.
func (e *Engine) CommitBooking(appointment *models.Appointment, durationMinutes int) error {
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if appointment.StartTime.Before(e.now()) {
		return ErrPastDate
	}

	lock := e.providerLock(appointment.ProviderID)
	lock.Lock()
	defer lock.Unlock()

	ok, err := e.IsBookable(appointment.ProviderID, appointment.StartTime, durationMinutes)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSlotTaken
	}

	appointment.EndTime = appointment.StartTime.Add(time.Duration(durationMinutes) * time.Minute)
	appointment.Status = models.StatusBooked
	return e.appointments.Insert(appointment)
}
