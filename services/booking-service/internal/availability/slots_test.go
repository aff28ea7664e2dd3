package availability

import (
	"testing"
	"time"
)

func TestSlots_FullBusinessDay(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	open := day.Add(9 * time.Hour)
	close := day.Add(18 * time.Hour)
	now := day.Add(8 * time.Hour)

	slots := Slots(open, close, 30*time.Minute, nil, now)
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("first slot = %s, want 09:00", slots[0].Start)
	}
	if slots[0].Label != "9:00 AM" {
		t.Fatalf("first label = %q", slots[0].Label)
	}
	last := slots[len(slots)-1]
	if !last.Start.Equal(day.Add(17*time.Hour + 30*time.Minute)) {
		t.Fatalf("last slot = %s, want 17:30", last.Start)
	}
}

func TestSlots_AroundTheClockSkipsPast(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	now := day.Add(10*time.Hour + 30*time.Minute)

	// 24-hour window, hourly slots: 00:00-10:00 are in the past, 10:00 is not
	// strictly after now either; 11:00 through 23:00 remain.
	slots := Slots(day, day.AddDate(0, 0, 1), time.Hour, nil, now)
	if len(slots) != 13 {
		t.Fatalf("expected 13 slots, got %d", len(slots))
	}
	if !slots[0].Start.Equal(day.Add(11 * time.Hour)) {
		t.Fatalf("first slot = %s, want 11:00", slots[0].Start)
	}
	if !slots[len(slots)-1].Start.Equal(day.Add(23 * time.Hour)) {
		t.Fatalf("last slot = %s, want 23:00", slots[len(slots)-1].Start)
	}
}

func TestSlots_OverlapExclusion(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	open := day.Add(9 * time.Hour)
	close := day.Add(11 * time.Hour)
	busy := []Interval{
		{Start: day.Add(10 * time.Hour), End: day.Add(10*time.Hour + 30*time.Minute)},
	}

	slots := Slots(open, close, 30*time.Minute, busy, day)

	// Half-open test: the 09:30-10:00 slot only touches the reservation at
	// 10:00 and stays bookable; the identical 10:00 slot is excluded.
	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start.Format("15:04")] = true
	}
	if starts["10:00"] {
		t.Fatal("10:00 slot overlaps the reservation and must be excluded")
	}
	if !starts["09:30"] || !starts["10:30"] {
		t.Fatalf("09:30 and 10:30 should remain, got %v", starts)
	}
}

func TestSlots_LongerDurationOverlapsNeighbours(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	busy := []Interval{
		{Start: day.Add(10 * time.Hour), End: day.Add(10*time.Hour + 45*time.Minute)},
	}

	// 45-minute slots starting 09:15: the 09:15-10:00 half-open slot touches
	// 10:00 exactly and stays; 10:00 and 10:45 start inside or at the busy
	// interval boundary.
	slots := Slots(day.Add(9*time.Hour+15*time.Minute), day.Add(12*time.Hour), 45*time.Minute, busy, day)
	for _, s := range slots {
		if s.Start.Equal(day.Add(10 * time.Hour)) {
			t.Fatal("slot identical to reservation must be excluded")
		}
	}
	if !slots[0].Start.Equal(day.Add(9*time.Hour + 15*time.Minute)) {
		t.Fatalf("first slot = %s, want 09:15", slots[0].Start)
	}
}

func TestSlots_PartialFinalSlotDropped(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	// 09:00-10:15 with 30-minute slots: 09:00, 09:30; 10:00 would end 10:30.
	slots := Slots(day.Add(9*time.Hour), day.Add(10*time.Hour+15*time.Minute), 30*time.Minute, nil, day)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
}

func TestSlots_DegenerateWindows(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := Slots(day, day, 30*time.Minute, nil, day); got != nil {
		t.Fatalf("empty window should yield no slots, got %v", got)
	}
	if got := Slots(day, day.Add(time.Hour), 0, nil, day); got != nil {
		t.Fatalf("zero duration should yield no slots, got %v", got)
	}
}

func TestWeekDates(t *testing.T) {
	now := time.Date(2026, 3, 9, 14, 45, 0, 0, time.UTC)
	dates := WeekDates(now)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	if !dates[0].Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first date = %s, want today's midnight", dates[0])
	}
	if !dates[6].Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("last date = %s, want six days out", dates[6])
	}
}
