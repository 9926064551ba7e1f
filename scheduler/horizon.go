package scheduler

import (
	"time"
)

// AvailableDates scans the rolling horizon from today through
// today+daysAhead-1 and returns, earliest first, the dates with at least one
// bookable start for the given service duration.
func (e *Engine) AvailableDates(providerID uint, daysAhead, durationMinutes int) ([]time.Time, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if daysAhead <= 0 {
		daysAhead = DefaultHorizonDays
	}

	today := DateOf(e.now())
	var dates []time.Time
	for i := 0; i < daysAhead; i++ {
		date := today.AddDate(0, 0, i)
		slots, err := e.AvailableSlots(providerID, date, durationMinutes)
		if err != nil {
			return nil, err
		}
		if len(slots) > 0 {
			dates = append(dates, date)
		}
	}
	return dates, nil
}
