package domain

import "errors"

var (
	// ErrInvalidTransition is returned for a status change outside the transition table
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrInvalidStatus is returned when a status string is not a known status
	ErrInvalidStatus = errors.New("domain: invalid appointment status")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidRole is returned when a role string is not a known role
	ErrInvalidRole = errors.New("domain: invalid role")
)
