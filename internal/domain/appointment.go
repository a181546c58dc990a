package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SST-VisitService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of a technical visit
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// AllStatuses in lifecycle order
var AllStatuses = []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Appointment represents a technical visit requested by an organization
type Appointment struct {
	ID        string
	CompanyID string
	// CompanyName is captured at creation time and never re-synced with the company record
	CompanyName  string
	TechnicianID string
	Date         time.Time // midnight UTC
	Time         types.TimeString
	Status       AppointmentStatus
	Description  *string
	CreatedAt    time.Time
}

// IsActive returns true unless the appointment is cancelled
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// Occupies returns true if the appointment is active and holds the given (date, slot)
func (a *Appointment) Occupies(date time.Time, slot types.TimeString) bool {
	return a.IsActive() && SameDay(a.Date, date) && a.Time == slot
}

// DateString returns the date in YYYY-MM-DD form
func (a *Appointment) DateString() string {
	return a.Date.Format(DateFormat)
}

// Clone returns a deep copy
func (a *Appointment) Clone() *Appointment {
	c := *a
	if a.Description != nil {
		d := *a.Description
		c.Description = &d
	}
	return &c
}

// SameDay compares calendar dates, ignoring time of day
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NormalizeDate drops the time of day and moves the date to UTC
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into midnight UTC
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}
