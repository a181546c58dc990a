package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultSlotCatalog daily bookable times, in display order
var DefaultSlotCatalog = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00"}

// Scheduling defaults
const (
	DefaultLimitedThreshold = 3
	DefaultTechnicianID     = "tech_1"
	DefaultToastTTL         = 4 * time.Second
	DefaultDescription      = "Technical visit requested via portal"
)

// Business validation constants
const (
	MaxDescriptionLength = 500
	MaxCompanyNameLength = 200
)
