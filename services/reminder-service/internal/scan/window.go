package scan

import (
	"errors"
	"time"
)

// Window identifies one of the two reminder lead times tracked per
// appointment. Each has its own sent flag so the 24-hour and 2-hour
// reminders fire independently.
type Window string

const (
	Window24h Window = "24h"
	Window2h  Window = "2h"

	// Tolerance pads the due range on both sides so appointments booked
	// slightly off the scan cadence are still picked up exactly once.
	Tolerance = 15 * time.Minute
)

var ErrInvalidWindow = errors.New("scan: invalid reminder window")

func ParseWindow(raw string) (Window, error) {
	switch Window(raw) {
	case Window24h:
		return Window24h, nil
	case Window2h:
		return Window2h, nil
	default:
		return "", ErrInvalidWindow
	}
}

// Offset is how far before the appointment start the reminder is due.
func (w Window) Offset() time.Duration {
	if w == Window2h {
		return 2 * time.Hour
	}
	return 24 * time.Hour
}

// FlagColumn names the appointments column recording that this window's
// reminder went out.
func (w Window) FlagColumn() string {
	if w == Window2h {
		return "sent_2h"
	}
	return "sent_24h"
}

// DueRange returns the start-time interval whose appointments are due a
// reminder for this window as of now.
func (w Window) DueRange(now time.Time) (time.Time, time.Time) {
	target := now.Add(w.Offset())
	return target.Add(-Tolerance), target.Add(Tolerance)
}

// Contains reports whether an appointment starting at startsAt is inside
// this window's due range as of now.
func (w Window) Contains(now, startsAt time.Time) bool {
	lo, hi := w.DueRange(now)
	return !startsAt.Before(lo) && !startsAt.After(hi)
}
