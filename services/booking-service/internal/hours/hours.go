// Package hours interprets clinic operating-hours entries.
package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a wall-clock time within a day. Minute-of-day 24:00 marks the end
// of a 24-hour window.
type Clock struct {
	Hour   int
	Minute int
}

// State classifies how a weekday entry resolved.
type State int

const (
	// Closed means the clinic does not open that day. Not an error.
	Closed State = iota
	// Open means the entry parsed into an explicit window.
	Open
	// FallbackUsed means the entry was malformed and the default window was
	// substituted. Callers should log it for operator visibility.
	FallbackUsed
)

// Default window substituted for malformed entries. Deterministic and lossy;
// never reported as an error to the caller.
var (
	DefaultOpen  = Clock{Hour: 9}
	DefaultClose = Clock{Hour: 18}
)

// Resolve interprets one weekday's operating-hours entry. An empty entry or
// "Closed" yields Closed; "24 hours" yields [00:00, 24:00); a range such as
// "9:00 AM - 6:00 PM" is parsed; anything else falls back to [09:00, 18:00)
// with FallbackUsed so the caller can surface a warning.
func Resolve(entry string) (open Clock, close Clock, state State) {
	entry = strings.TrimSpace(entry)
	if entry == "" || strings.EqualFold(entry, "closed") {
		return Clock{}, Clock{}, Closed
	}
	if strings.EqualFold(entry, "24 hours") {
		return Clock{}, Clock{Hour: 24}, Open
	}

	open, close, err := parseRange(entry)
	if err != nil {
		return DefaultOpen, DefaultClose, FallbackUsed
	}
	return open, close, Open
}

// WindowOn anchors a resolved [open, close) bound onto a calendar date,
// keeping the date's location.
func WindowOn(date time.Time, open, close Clock) (time.Time, time.Time) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	start := midnight.Add(time.Duration(open.Hour)*time.Hour + time.Duration(open.Minute)*time.Minute)
	end := midnight.Add(time.Duration(close.Hour)*time.Hour + time.Duration(close.Minute)*time.Minute)
	return start, end
}

func parseRange(entry string) (Clock, Clock, error) {
	parts := strings.SplitN(entry, "-", 2)
	if len(parts) != 2 {
		return Clock{}, Clock{}, fmt.Errorf("not a range: %q", entry)
	}
	open, err := parseClock12(parts[0])
	if err != nil {
		return Clock{}, Clock{}, err
	}
	close, err := parseClock12(parts[1])
	if err != nil {
		return Clock{}, Clock{}, err
	}
	if minuteOfDay(close) <= minuteOfDay(open) {
		return Clock{}, Clock{}, fmt.Errorf("close not after open: %q", entry)
	}
	return open, close, nil
}

// parseClock12 parses a 12-hour time like "9:00 AM" or "12:30pm".
func parseClock12(s string) (Clock, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	var pm bool
	switch {
	case strings.HasSuffix(s, "AM"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "AM"))
	case strings.HasSuffix(s, "PM"):
		pm = true
		s = strings.TrimSpace(strings.TrimSuffix(s, "PM"))
	default:
		return Clock{}, fmt.Errorf("missing AM/PM: %q", s)
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		mm = "0"
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || hour < 1 || hour > 12 {
		return Clock{}, fmt.Errorf("bad hour: %q", s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("bad minute: %q", s)
	}

	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return Clock{Hour: hour, Minute: minute}, nil
}

func minuteOfDay(c Clock) int {
	return c.Hour*60 + c.Minute
}
