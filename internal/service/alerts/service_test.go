package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/clock"
	"github.com/m04kA/SST-VisitService/pkg/logger"
)

var (
	start = time.Date(2024, 9, 20, 9, 0, 0, 0, time.UTC)
	admin = &domain.User{ID: "admin_1", Role: domain.RoleAdmin}
	org   = &domain.User{ID: "comp_1", Role: domain.RoleOrganization}
)

func setupService(t *testing.T) (*Service, *clock.FakeClock) {
	t.Helper()
	clk := clock.Fake(start)
	return NewService(clk, 4*time.Second, logger.NewNop()), clk
}

func TestToast_ExpiresAfterTTL(t *testing.T) {
	s, clk := setupService(t)

	s.Success("comp_1", "Appointment scheduled")
	toast, ok := s.CurrentToast("comp_1")
	require.True(t, ok)
	assert.Equal(t, ToastSuccess, toast.Kind)
	assert.Equal(t, start.Add(4*time.Second), toast.ExpiresAt)

	clk.Advance(3999 * time.Millisecond)
	_, ok = s.CurrentToast("comp_1")
	assert.True(t, ok)

	clk.Advance(time.Millisecond)
	_, ok = s.CurrentToast("comp_1")
	assert.False(t, ok)
	assert.Equal(t, 0, clk.PendingCount())
}

func TestToast_ReplacementCancelsPreviousTimer(t *testing.T) {
	s, clk := setupService(t)

	s.Success("comp_1", "first")
	clk.Advance(3 * time.Second)

	s.Failure("comp_1", "second")
	assert.Equal(t, 1, clk.PendingCount())

	// истечение первого уведомления не должно снять второе
	clk.Advance(1500 * time.Millisecond)
	toast, ok := s.CurrentToast("comp_1")
	require.True(t, ok)
	assert.Equal(t, "second", toast.Message)
	assert.Equal(t, ToastError, toast.Kind)

	clk.Advance(2500 * time.Millisecond)
	_, ok = s.CurrentToast("comp_1")
	assert.False(t, ok)
}

func TestToast_PerUserSlots(t *testing.T) {
	s, _ := setupService(t)

	s.Success("comp_1", "for org")
	s.Success("admin_1", "for admin")

	toast, ok := s.CurrentToast("comp_1")
	require.True(t, ok)
	assert.Equal(t, "for org", toast.Message)

	s.Dismiss("comp_1")
	_, ok = s.CurrentToast("comp_1")
	assert.False(t, ok)
	_, ok = s.CurrentToast("admin_1")
	assert.True(t, ok)
}

func TestClose_StopsTimers(t *testing.T) {
	s, clk := setupService(t)

	s.Success("comp_1", "a")
	s.Success("tech_1", "b")
	require.Equal(t, 2, clk.PendingCount())

	s.Close()
	assert.Equal(t, 0, clk.PendingCount())
	_, ok := s.CurrentToast("comp_1")
	assert.False(t, ok)
}

func TestAdminAlerts(t *testing.T) {
	s, _ := setupService(t)

	s.PublishAdminAlert("first")
	s.PublishAdminAlert("second")

	alerts, err := s.Alerts(admin)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "second", alerts[0].Message)
	assert.Equal(t, "first", alerts[1].Message)

	_, err = s.Alerts(org)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, s.ClearAlerts(org), ErrAccessDenied)

	require.NoError(t, s.ClearAlerts(admin))
	alerts, err = s.Alerts(admin)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
