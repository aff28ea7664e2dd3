package hours

import (
	"testing"
	"time"
)

func TestResolveClosed(t *testing.T) {
	for _, entry := range []string{"Closed", "closed", "", "   "} {
		if _, _, state := Resolve(entry); state != Closed {
			t.Fatalf("Resolve(%q) state = %v, want Closed", entry, state)
		}
	}
}

func TestResolve24Hours(t *testing.T) {
	open, close, state := Resolve("24 hours")
	if state != Open {
		t.Fatalf("state = %v, want Open", state)
	}
	if open != (Clock{}) {
		t.Fatalf("open = %+v, want midnight", open)
	}
	if close != (Clock{Hour: 24}) {
		t.Fatalf("close = %+v, want 24:00", close)
	}
}

func TestResolveRange(t *testing.T) {
	open, close, state := Resolve("9:00 AM - 6:00 PM")
	if state != Open {
		t.Fatalf("state = %v, want Open", state)
	}
	if open != (Clock{Hour: 9}) {
		t.Fatalf("open = %+v, want 09:00", open)
	}
	if close != (Clock{Hour: 18}) {
		t.Fatalf("close = %+v, want 18:00", close)
	}
}

func TestResolveRangeNoonMidnight(t *testing.T) {
	open, close, state := Resolve("12:00 AM - 12:30 PM")
	if state != Open {
		t.Fatalf("state = %v, want Open", state)
	}
	if open != (Clock{}) {
		t.Fatalf("open = %+v, want 00:00", open)
	}
	if close != (Clock{Hour: 12, Minute: 30}) {
		t.Fatalf("close = %+v, want 12:30", close)
	}
}

func TestResolveMalformedFallsBack(t *testing.T) {
	for _, entry := range []string{"9-6", "whenever", "6:00 PM - 9:00 AM", "25:00 AM - 6:00 PM"} {
		open, close, state := Resolve(entry)
		if state != FallbackUsed {
			t.Fatalf("Resolve(%q) state = %v, want FallbackUsed", entry, state)
		}
		if open != DefaultOpen || close != DefaultClose {
			t.Fatalf("Resolve(%q) = %+v-%+v, want default window", entry, open, close)
		}
	}
}

func TestWindowOn(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	start, end := WindowOn(day, Clock{Hour: 9}, Clock{Hour: 18})
	if !start.Equal(day.Add(9 * time.Hour)) {
		t.Fatalf("start = %s", start)
	}
	if !end.Equal(day.Add(18 * time.Hour)) {
		t.Fatalf("end = %s", end)
	}

	// 24:00 lands on the next midnight.
	_, end = WindowOn(day, Clock{}, Clock{Hour: 24})
	if !end.Equal(day.AddDate(0, 0, 1)) {
		t.Fatalf("24:00 end = %s", end)
	}
}
