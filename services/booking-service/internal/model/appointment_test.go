package model

import "testing"

func TestCanTransitionTo(t *testing.T) {
	if !StatusScheduled.CanTransitionTo(StatusCancelled) {
		t.Fatal("scheduled -> cancelled must be permitted")
	}
	if !StatusScheduled.CanTransitionTo(StatusRescheduled) {
		t.Fatal("scheduled -> rescheduled must be permitted")
	}
	if !StatusRescheduled.CanTransitionTo(StatusNoShow) {
		t.Fatal("rescheduled -> no_show must be permitted")
	}
	if StatusCancelled.CanTransitionTo(StatusScheduled) {
		t.Fatal("cancelled is terminal")
	}
	if StatusCompleted.CanTransitionTo(StatusCancelled) {
		t.Fatal("completed is terminal")
	}
	if StatusNoShow.CanTransitionTo(StatusRescheduled) {
		t.Fatal("no_show is terminal")
	}
}

func TestActiveStatuses(t *testing.T) {
	active := map[Status]bool{
		StatusScheduled:   true,
		StatusRescheduled: true,
		StatusCompleted:   false,
		StatusCancelled:   false,
		StatusNoShow:      false,
	}
	for s, want := range active {
		if s.Active() != want {
			t.Fatalf("Active(%s) = %v, want %v", s, s.Active(), want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusScheduled, StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if Status("deleted").Valid() {
		t.Fatal("unknown status should be invalid")
	}
}
