package controllers

import (
	"testing"
	"time"
)

func TestWeekScheduleRangeCoversSevenDays(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 42, 0, 0, time.Local)
	from, to := weekScheduleRange(now)

	if want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local); !from.Equal(want) {
		t.Errorf("from = %v, want midnight today (%v)", from, want)
	}

	inRange := func(d time.Time) bool { return !d.Before(from) && d.Before(to) }

	days := 0
	for d := from; inRange(d); d = d.AddDate(0, 0, 1) {
		days++
	}
	if days != 7 {
		t.Errorf("range covers %d days, want 7", days)
	}

	if eighth := from.AddDate(0, 0, 7); inRange(eighth) {
		t.Errorf("day %v must fall outside the week view", eighth.Format("2006-01-02"))
	}
	if last := from.AddDate(0, 0, 6); !inRange(last) {
		t.Errorf("day %v must fall inside the week view", last.Format("2006-01-02"))
	}
}
