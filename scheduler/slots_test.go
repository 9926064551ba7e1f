package scheduler

import (
	"errors"
	"testing"
	"time"
)

func wantTimes(t *testing.T, got []time.Time, date time.Time, hhmm ...[2]int) {
	t.Helper()
	if len(got) != len(hhmm) {
		t.Fatalf("got %d slots %v, want %d", len(got), got, len(hhmm))
	}
	for i, hm := range hhmm {
		want := at(date, hm[0], hm[1])
		if !got[i].Equal(want) {
			t.Errorf("slot[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestAvailableSlotsSingleWindow(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "12:00"))
	e := newTestEngine(ws, &fakeAppointmentStore{})

	got, err := e.AvailableSlots(master, d, 60)
	if err != nil {
		t.Fatal(err)
	}
	// Last admissible start is 11:00: 11:00+60min is still <= 12:00.
	wantTimes(t, got, d, [2]int{9, 0}, [2]int{9, 30}, [2]int{10, 0}, [2]int{10, 30}, [2]int{11, 0})
}

func TestAvailableSlotsWithBookedAppointment(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "12:00"))
	appts := &fakeAppointmentStore{}
	appts.appts = append(appts.appts, booked(master, at(d, 10, 0), 60))
	e := newTestEngine(ws, appts)

	got, err := e.AvailableSlots(master, d, 60)
	if err != nil {
		t.Fatal(err)
	}
	// 09:30 ends at 10:30 and collides with the 10:00 booking; 10:30 collides
	// too. Only the boundary-touching starts survive.
	wantTimes(t, got, d, [2]int{9, 0}, [2]int{11, 0})
}

func TestAvailableSlotsDurationLongerThanWindow(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "10:00"))
	e := newTestEngine(ws, &fakeAppointmentStore{})

	got, err := e.AvailableSlots(master, d, 90)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want no slots for a 90 minute service in a 60 minute window", got)
	}
}

func TestAvailableSlotsNoWindows(t *testing.T) {
	e := newTestEngine(&fakeWindowStore{}, &fakeAppointmentStore{})
	got, err := e.AvailableSlots(master, day(2024, time.June, 10), 60)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestAvailableSlotsInvalidDuration(t *testing.T) {
	e := newTestEngine(&fakeWindowStore{}, &fakeAppointmentStore{})
	for _, minutes := range []int{0, -1} {
		if _, err := e.AvailableSlots(master, day(2024, time.June, 10), minutes); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("AvailableSlots(duration=%d): error = %v, want ErrInvalidDuration", minutes, err)
		}
	}
}

func TestAvailableSlotsUnorderedOverlappingWindows(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	// Deliberately out of order and overlapping around 10:00-11:00.
	ws.slots = append(ws.slots,
		openSlot(master, d, "10:00", "12:00"),
		openSlot(master, d, "09:00", "11:00"),
	)
	e := newTestEngine(ws, &fakeAppointmentStore{})

	got, err := e.AvailableSlots(master, d, 60)
	if err != nil {
		t.Fatal(err)
	}
	// Sorted ascending, 10:00 only once even though both windows produce it.
	wantTimes(t, got, d, [2]int{9, 0}, [2]int{9, 30}, [2]int{10, 0}, [2]int{10, 30}, [2]int{11, 0})
}

func TestAvailableSlotsSkipsBlockedWindows(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots,
		openSlot(master, d, "09:00", "17:00"),
		blockedSlot(master, d, "12:00", "13:00"),
	)
	e := newTestEngine(ws, &fakeAppointmentStore{})

	got, err := e.AvailableSlots(master, d, 60)
	if err != nil {
		t.Fatal(err)
	}
	// 11:30, 12:00 and 12:30 must be gone, 11:00 and 13:00 must stay.
	for _, s := range got {
		switch {
		case s.Equal(at(d, 11, 30)), s.Equal(at(d, 12, 0)), s.Equal(at(d, 12, 30)):
			t.Errorf("slot %v should have been blocked", s)
		}
	}
	has := func(want time.Time) bool {
		for _, s := range got {
			if s.Equal(want) {
				return true
			}
		}
		return false
	}
	if !has(at(d, 11, 0)) {
		t.Error("11:00 ends exactly at the blocked start and must remain available")
	}
	if !has(at(d, 13, 0)) {
		t.Error("13:00 starts exactly at the blocked end and must remain available")
	}
}

func TestAvailableSlotsFiltersElapsedToday(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots, openSlot(master, d, "09:00", "12:00"))
	e := newTestEngine(ws, &fakeAppointmentStore{})
	e.now = func() time.Time { return at(d, 10, 15) }

	got, err := e.AvailableSlots(master, d, 60)
	if err != nil {
		t.Fatal(err)
	}
	wantTimes(t, got, d, [2]int{10, 30}, [2]int{11, 0})
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	d := day(2024, time.June, 10)
	ws := &fakeWindowStore{}
	ws.slots = append(ws.slots,
		openSlot(master, d, "09:00", "13:00"),
		blockedSlot(master, d, "10:00", "10:30"),
	)
	appts := &fakeAppointmentStore{}
	appts.appts = append(appts.appts, booked(master, at(d, 11, 0), 30))
	e := newTestEngine(ws, appts)

	first, err := e.AvailableSlots(master, d, 60)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.AvailableSlots(master, d, 60)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("slot[%d] differs: %v vs %v", i, first[i], second[i])
		}
	}
}
