package scheduler

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a day, stored as minutes since
// midnight. Working slot times arrive as "HH:MM" strings and are parsed into
// this type so they can be compared and combined with calendar dates.
type TimeOfDay int

// ParseTimeOfDay parses a strict 24h "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At pins the time of day onto a calendar date.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, date.Location())
}

// DateOf truncates an instant to midnight of its calendar day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
