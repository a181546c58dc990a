package domain

import (
	"fmt"
	"strings"
)

// transitions is the appointment state machine.
// COMPLETED is terminal; CANCELLED can only be reopened to PENDING.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {StatusPending},
}

// AllowedTransitions returns the statuses reachable from the given one
func AllowedTransitions(from AppointmentStatus) []AppointmentStatus {
	allowed := transitions[from]
	out := make([]AppointmentStatus, len(allowed))
	copy(out, allowed)
	return out
}

// CanTransitionTo reports whether from -> to is in the transition table
func CanTransitionTo(from, to AppointmentStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition if from -> to is not allowed
func ValidateTransition(from, to AppointmentStatus) error {
	if !CanTransitionTo(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// IsReopen reports whether the transition brings a cancelled appointment back into the schedule
func IsReopen(from, to AppointmentStatus) bool {
	return from == StatusCancelled && to == StatusPending
}

// ParseAppointmentStatus parses a status name (case-insensitive)
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}
