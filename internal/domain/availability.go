package domain

import "time"

// CapacityClass classifies a calendar day's booking pressure
type CapacityClass string

const (
	CapacityNone    CapacityClass = "NONE"    // weekend or fully booked
	CapacityLimited CapacityClass = "LIMITED" // threshold reached
	CapacityFull    CapacityClass = "FULL"    // open
)

// IsWeekend uses the weekday mod 6 rule: Sunday (0) and Saturday (6)
func IsWeekend(date time.Time) bool {
	return int(date.Weekday())%6 == 0
}

// ClassifyDay computes the capacity class of a day from its active appointment count
func ClassifyDay(date time.Time, activeCount, catalogSize, limitedThreshold int) CapacityClass {
	switch {
	case IsWeekend(date):
		return CapacityNone
	case activeCount >= catalogSize:
		return CapacityNone
	case activeCount >= limitedThreshold:
		return CapacityLimited
	default:
		return CapacityFull
	}
}

// DaysInMonth returns the number of days in the month: day 0 of the next month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 of the month (0 = Sunday)
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}
