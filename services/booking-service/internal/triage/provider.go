// Package triage exposes the external AI symptom-triage service to booking.
// The assessment level is an opaque classification string; it is carried on
// emergency appointments but never interpreted here.
package triage

import "context"

type Assessment struct {
	ID    string
	Level string
}

type Provider interface {
	GetAssessment(ctx context.Context, assessmentID string) (Assessment, error)
}
