package model

import "time"

// Status is the appointment lifecycle state. Appointments are never deleted;
// cancellation and no-shows are status flips so history survives.
type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
	StatusNoShow      Status = "no_show"
)

// allowedTransitions is the explicit lifecycle table. Completed, cancelled
// and no_show are terminal.
var allowedTransitions = map[Status][]Status{
	StatusScheduled:   {StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow},
	StatusRescheduled: {StatusCompleted, StatusCancelled, StatusRescheduled, StatusNoShow},
	StatusCompleted:   {},
	StatusCancelled:   {},
	StatusNoShow:      {},
}

func (s Status) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active reports whether the appointment still occupies its interval.
// Active appointments block overlapping bookings at the same clinic and are
// the only ones eligible for reminder scans.
func (s Status) Active() bool {
	return s == StatusScheduled || s == StatusRescheduled
}

const (
	// DefaultDurationMinutes applies when a booking does not specify one.
	DefaultDurationMinutes = 30

	TypeEmergency = "emergency"

	// EmergencyLeadTime is how far out an emergency booking is targeted when
	// created from a triage assessment.
	EmergencyLeadTime = 30 * time.Minute
)

type Appointment struct {
	ID           string
	ClinicID     string
	PetID        string
	StartsAt     time.Time
	EndsAt       time.Time
	Type         string
	Purpose      string
	Status       Status
	Sent24h      bool
	Sent2h       bool
	Notes        string
	TriageID     string
	CancelledAt  *time.Time
	CancelReason string
	CreatedAt    time.Time
}
