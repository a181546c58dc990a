package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:00", false},
		{"valid afternoon", "17:30", false},
		{"missing leading zero", "9:00", true},
		{"out of range hour", "25:00", true},
		{"garbage", "nine", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeStringCompareAndAdd(t *testing.T) {
	nine := TimeString("09:00")
	ten := TimeString("10:00")

	assert.True(t, nine.IsBefore(ten))
	assert.True(t, ten.IsAfter(nine))
	assert.False(t, nine.IsAfter(nine))

	next, err := nine.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, ten, next)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestNewTimeStringFromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 9, 20, 14, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}
