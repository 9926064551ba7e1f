package scheduler

import (
	"sort"
	"time"
)

// AvailableSlots enumerates bookable start times on one date for a service of
// the given duration. Candidates are generated from each open slot's start in
// SlotStep increments while the full service still fits, then filtered through
// IsBookable. The result is ascending and free of duplicates from overlapping
// open slots. When date is today, starts that have already passed are dropped.
func (e *Engine) AvailableSlots(providerID uint, date time.Time, durationMinutes int) ([]time.Time, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	duration := time.Duration(durationMinutes) * time.Minute
	day := DateOf(date)

	slots, err := e.windows.ListWindows(providerID, day)
	if err != nil {
		return nil, err
	}

	now := e.now()
	var available []time.Time
	for _, slot := range slots {
		if slot.IsBlocked {
			continue
		}
		slotStart, slotEnd, err := windowBounds(slot)
		if err != nil {
			return nil, err
		}

		for candidate := slotStart; !candidate.Add(duration).After(slotEnd); candidate = candidate.Add(SlotStep) {
			if candidate.Before(now) {
				continue
			}
			ok, err := e.IsBookable(providerID, candidate, durationMinutes)
			if err != nil {
				return nil, err
			}
			if ok {
				available = append(available, candidate)
			}
		}
	}

	sort.Slice(available, func(i, j int) bool { return available[i].Before(available[j]) })

	// Overlapping open slots can yield the same start twice.
	deduped := available[:0]
	for i, t := range available {
		if i == 0 || !t.Equal(available[i-1]) {
			deduped = append(deduped, t)
		}
	}
	return deduped, nil
}
