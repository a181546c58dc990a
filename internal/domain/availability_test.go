package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDay(t *testing.T) {
	friday := time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 9, 22, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   time.Time
		active int
		want   CapacityClass
	}{
		{"empty weekday", friday, 0, CapacityFull},
		{"below threshold", friday, 2, CapacityFull},
		{"three of eight", friday, 3, CapacityLimited},
		{"four of eight", friday, 4, CapacityLimited},
		{"seven of eight", friday, 7, CapacityLimited},
		{"fully booked", friday, 8, CapacityNone},
		{"saturday", saturday, 0, CapacityNone},
		{"sunday", sunday, 0, CapacityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDay(tt.date, tt.active, len(DefaultSlotCatalog), DefaultLimitedThreshold))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 30, DaysInMonth(2024, time.September))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
}

func TestFirstWeekday(t *testing.T) {
	assert.Equal(t, time.Sunday, FirstWeekday(2024, time.September))
	assert.Equal(t, time.Tuesday, FirstWeekday(2024, time.October))
}
