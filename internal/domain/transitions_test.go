package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from, to AppointmentStatus
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, true},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransitionTo(tt.from, tt.to))

			err := ValidateTransition(tt.from, tt.to)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestLifecycleSequence(t *testing.T) {
	status := StatusPending
	for _, next := range []AppointmentStatus{StatusConfirmed, StatusCompleted} {
		require.NoError(t, ValidateTransition(status, next))
		status = next
	}
	assert.ErrorIs(t, ValidateTransition(status, StatusPending), ErrInvalidTransition)
	assert.Empty(t, AllowedTransitions(StatusCompleted))
}

func TestParseAppointmentStatus(t *testing.T) {
	s, err := ParseAppointmentStatus(" confirmed ")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	_, err = ParseAppointmentStatus("ARCHIVED")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestIsReopen(t *testing.T) {
	assert.True(t, IsReopen(StatusCancelled, StatusPending))
	assert.False(t, IsReopen(StatusPending, StatusConfirmed))
}
