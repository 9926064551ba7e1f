package scheduler

import "errors"

var (
	// ErrInvalidDuration rejects non-positive service durations.
	ErrInvalidDuration = errors.New("scheduler: duration must be positive")
	// ErrInvalidTime rejects time strings that are not valid "HH:MM".
	ErrInvalidTime = errors.New("scheduler: invalid time of day")
	// ErrInvalidRange rejects windows whose start is not before their end.
	ErrInvalidRange = errors.New("scheduler: start time must be before end time")
	// ErrPastDate rejects bookings and windows placed in the past.
	ErrPastDate = errors.New("scheduler: date is in the past")
	// ErrSlotTaken is returned by CommitBooking when the slot stopped being
	// admissible between display and confirmation.
	ErrSlotTaken = errors.New("scheduler: slot is no longer available")
)
