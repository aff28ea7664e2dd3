package handlers

import "testing"

func TestNormalizeHours(t *testing.T) {
	out, ok := normalizeHours(map[string]string{
		"Monday":  " 9:00 AM - 6:00 PM ",
		"SUNDAY":  "Closed",
		"tuesday": "24 hours",
	})
	if !ok {
		t.Fatal("expected valid weekday keys to normalize")
	}
	if out["monday"] != "9:00 AM - 6:00 PM" {
		t.Fatalf("monday = %q", out["monday"])
	}
	if out["sunday"] != "Closed" {
		t.Fatalf("sunday = %q", out["sunday"])
	}
	if out["tuesday"] != "24 hours" {
		t.Fatalf("tuesday = %q", out["tuesday"])
	}

	if _, ok := normalizeHours(map[string]string{"funday": "9:00 AM - 6:00 PM"}); ok {
		t.Fatal("expected unknown weekday key to be rejected")
	}
}

func TestBoolParam(t *testing.T) {
	for _, raw := range []string{"true", "1", "T", " true "} {
		if !boolParam(raw) {
			t.Fatalf("boolParam(%q) should be true", raw)
		}
	}
	for _, raw := range []string{"", "false", "0", "yes", "garbage"} {
		if boolParam(raw) {
			t.Fatalf("boolParam(%q) should be false", raw)
		}
	}
}
