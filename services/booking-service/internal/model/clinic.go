package model

import (
	"strings"
	"time"
)

// Clinic is a bookable veterinary clinic. Hours maps a lowercase weekday name
// to its operating-hours entry: "Closed", "24 hours", or a 12-hour range such
// as "9:00 AM - 6:00 PM". Coordinates are optional; clinics without them are
// skipped by proximity search.
type Clinic struct {
	ID          string
	Name        string
	Address     string
	Latitude    *float64
	Longitude   *float64
	IsEmergency bool
	Is24Hour    bool
	Hours       map[string]string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WeekdayKey returns the Hours map key for a weekday.
func WeekdayKey(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// HoursFor returns the operating-hours entry for the given date's weekday.
// A missing entry reads as closed.
func (c Clinic) HoursFor(date time.Time) string {
	return c.Hours[WeekdayKey(date.Weekday())]
}
