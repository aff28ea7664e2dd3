package availability

import "time"

type Interval struct {
	Start time.Time
	End   time.Time
}

// Slot is a bookable candidate interval, derived on demand and never stored.
type Slot struct {
	Start     time.Time
	Label     string
	Available bool
}

// Slots returns the bookable slots within [windowStart, windowEnd):
// consecutive candidates of exactly duration starting at windowStart, minus
// those overlapping a busy interval, minus those not strictly in the future.
// A final partial slot that would cross windowEnd is dropped.
//
// All times are expected to be in the same location (timezone).
func Slots(windowStart, windowEnd time.Time, duration time.Duration, busy []Interval, now time.Time) []Slot {
	if duration <= 0 {
		return nil
	}
	if !windowEnd.After(windowStart) {
		return nil
	}

	var slots []Slot
	for t := windowStart; !t.Add(duration).After(windowEnd); t = t.Add(duration) {
		if !t.After(now) {
			continue
		}
		if overlapsAny(t, t.Add(duration), busy) {
			continue
		}
		slots = append(slots, Slot{Start: t, Label: Label(t), Available: true})
	}
	return slots
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		// Half-open intervals: [start,end) overlaps [b.Start,b.End) iff start < b.End && b.Start < end.
		if start.Before(b.End) && b.Start.Before(end) {
			return true
		}
	}
	return false
}

// Label formats a slot start for display, e.g. "9:00 AM".
func Label(t time.Time) string {
	return t.Format("3:04 PM")
}

// WeekDates returns the date of today plus the following six days, anchored
// at midnight in today's location.
func WeekDates(today time.Time) []time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, day.AddDate(0, 0, i))
	}
	return dates
}
