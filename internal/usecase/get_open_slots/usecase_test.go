package get_open_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/pkg/logger"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

var friday = time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)

func insert(t *testing.T, store *entity.Store, slot types.TimeString, status domain.AppointmentStatus) *domain.Appointment {
	t.Helper()
	a, err := store.InsertAppointment(context.Background(), &domain.Appointment{
		CompanyID: "comp_1", TechnicianID: "tech_1", Date: friday, Time: slot, Status: status,
	})
	require.NoError(t, err)
	return a
}

func TestExecute_ExcludesOccupiedInCatalogOrder(t *testing.T) {
	store := entity.NewStore(entity.Snapshot{})
	uc := NewUseCase(store, Options{}, logger.NewNop())

	insert(t, store, "10:00", domain.StatusPending)
	insert(t, store, "15:00", domain.StatusConfirmed)
	insert(t, store, "11:00", domain.StatusCancelled)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Equal(t, domain.CapacityFull, resp.Class)
	assert.Equal(t, []types.TimeString{"09:00", "11:00", "12:00", "14:00", "16:00", "17:00"}, resp.Slots)
}

func TestExecute_RecomputedOnEveryCall(t *testing.T) {
	store := entity.NewStore(entity.Snapshot{})
	uc := NewUseCase(store, Options{}, logger.NewNop())

	a := insert(t, store, "09:00", domain.StatusPending)

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))

	require.NoError(t, store.DeleteAppointment(context.Background(), a.ID))

	resp, err = uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)
	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
}

func TestExecute_Weekend(t *testing.T) {
	uc := NewUseCase(entity.NewStore(entity.Snapshot{}), Options{}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2024, 9, 22, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.True(t, resp.Closed)
	assert.Equal(t, domain.CapacityNone, resp.Class)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(entity.NewStore(entity.Snapshot{}), Options{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
