package scheduler

import (
	"time"
)

// IsBookable decides, in one pass, whether the interval starting at start
// and lasting duration minutes may be booked with the master. Checks run in
// order and the first failure rejects:
//
//  1. no booked appointment overlaps the interval,
//  2. no blocked slot overlaps the interval,
//  3. at least one open slot fully contains the interval.
//
// The decision is read-only; CommitBooking runs it again under the master's
// commit lock before persisting.
func (e *Engine) IsBookable(providerID uint, start time.Time, durationMinutes int) (bool, error) {
	if durationMinutes <= 0 {
		return false, ErrInvalidDuration
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	dayStart := DateOf(start)
	dayEnd := dayStart.AddDate(0, 0, 1)

	booked, err := e.appointments.ListBooked(providerID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}
	for _, appt := range booked {
		if overlaps(start, end, appt.StartTime, appt.EndTime) {
			return false, nil
		}
	}

	slots, err := e.windows.ListWindows(providerID, dayStart)
	if err != nil {
		return false, err
	}

	// Blocked slots win over any open slot they overlap.
	for _, slot := range slots {
		if !slot.IsBlocked {
			continue
		}
		slotStart, slotEnd, err := windowBounds(slot)
		if err != nil {
			return false, err
		}
		if overlaps(start, end, slotStart, slotEnd) {
			return false, nil
		}
	}

	// The whole interval must fit inside a single open slot; two adjacent
	// open slots do not merge.
	for _, slot := range slots {
		if slot.IsBlocked {
			continue
		}
		slotStart, slotEnd, err := windowBounds(slot)
		if err != nil {
			return false, err
		}
		if !start.Before(slotStart) && !end.After(slotEnd) {
			return true, nil
		}
	}

	return false, nil
}
