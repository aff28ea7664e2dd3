package scan

import (
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	if w, err := ParseWindow("24h"); err != nil || w != Window24h {
		t.Fatalf("ParseWindow(24h) = %v, %v", w, err)
	}
	if w, err := ParseWindow("2h"); err != nil || w != Window2h {
		t.Fatalf("ParseWindow(2h) = %v, %v", w, err)
	}
	if _, err := ParseWindow("6h"); err != ErrInvalidWindow {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
	if _, err := ParseWindow(""); err != ErrInvalidWindow {
		t.Fatalf("expected ErrInvalidWindow for empty input, got %v", err)
	}
}

func TestWindowOffsets(t *testing.T) {
	if got := Window24h.Offset(); got != 24*time.Hour {
		t.Fatalf("24h offset = %v", got)
	}
	if got := Window2h.Offset(); got != 2*time.Hour {
		t.Fatalf("2h offset = %v", got)
	}
}

func TestFlagColumn(t *testing.T) {
	if got := Window24h.FlagColumn(); got != "sent_24h" {
		t.Fatalf("24h flag column = %q", got)
	}
	if got := Window2h.FlagColumn(); got != "sent_2h" {
		t.Fatalf("2h flag column = %q", got)
	}
}

func TestDueRange(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	lo, hi := Window24h.DueRange(now)
	if want := now.Add(24*time.Hour - Tolerance); !lo.Equal(want) {
		t.Fatalf("24h range start = %v, want %v", lo, want)
	}
	if want := now.Add(24*time.Hour + Tolerance); !hi.Equal(want) {
		t.Fatalf("24h range end = %v, want %v", hi, want)
	}

	lo, hi = Window2h.DueRange(now)
	if want := now.Add(2*time.Hour - Tolerance); !lo.Equal(want) {
		t.Fatalf("2h range start = %v, want %v", lo, want)
	}
	if want := now.Add(2*time.Hour + Tolerance); !hi.Equal(want) {
		t.Fatalf("2h range end = %v, want %v", hi, want)
	}
}

func TestContains(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// Exactly 24 hours ahead is due.
	if !Window24h.Contains(now, now.Add(24*time.Hour)) {
		t.Fatal("start exactly 24h ahead should be due")
	}
	// Inside the tolerance band on either side.
	if !Window24h.Contains(now, now.Add(24*time.Hour-10*time.Minute)) {
		t.Fatal("start 23h50m ahead should be due")
	}
	if !Window24h.Contains(now, now.Add(24*time.Hour+15*time.Minute)) {
		t.Fatal("start at the tolerance boundary should be due")
	}
	// Outside the band.
	if Window24h.Contains(now, now.Add(24*time.Hour+16*time.Minute)) {
		t.Fatal("start past the tolerance boundary should not be due")
	}
	if Window24h.Contains(now, now.Add(2*time.Hour)) {
		t.Fatal("2h-ahead start should not be due for the 24h window")
	}

	if !Window2h.Contains(now, now.Add(2*time.Hour)) {
		t.Fatal("start exactly 2h ahead should be due for the 2h window")
	}
}
