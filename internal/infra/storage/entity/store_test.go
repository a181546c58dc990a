package entity

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

var visitDay = time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)

func newAppointment(companyID string, slot string) *domain.Appointment {
	return &domain.Appointment{
		CompanyID:    companyID,
		CompanyName:  companyID,
		TechnicianID: "tech_1",
		Date:         visitDay,
		Time:         types.TimeString(slot),
		Status:       domain.StatusPending,
	}
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(Snapshot{
		Users: []*domain.User{
			{ID: "admin_1", Name: "Admin", Email: "admin@sst.pro", Role: domain.RoleAdmin},
			{ID: "tech_1", Name: "Carlos", Email: "carlos@sst.pro", Role: domain.RoleTechnician},
		},
		Companies: []*domain.Company{
			{ID: "comp_1", Name: "Tech Solutions Ltda", TaxID: "12.345.678/0001-90"},
		},
	})
}

func TestInsertAppointment_PrependsWithFreshID(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	first, err := s.InsertAppointment(ctx, newAppointment("comp_1", "09:00"))
	require.NoError(t, err)
	second, err := s.InsertAppointment(ctx, newAppointment("comp_1", "10:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	list := s.ListAppointments(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestInsertAppointment_SlotConflict(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	_, err := s.InsertAppointment(ctx, newAppointment("comp_1", "09:00"))
	require.NoError(t, err)

	_, err = s.InsertAppointment(ctx, newAppointment("comp_2", "09:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, s.ListAppointments(ctx), 1)
}

func TestCancelThenRebook(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	first, err := s.InsertAppointment(ctx, newAppointment("comp_1", "09:00"))
	require.NoError(t, err)

	_, err = s.UpdateAppointmentStatus(ctx, first.ID, domain.StatusCancelled)
	require.NoError(t, err)

	second, err := s.InsertAppointment(ctx, newAppointment("comp_2", "09:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, second.Status)

	// повторное открытие отмененного визита при занятом слоте
	_, err = s.UpdateAppointmentStatus(ctx, first.ID, domain.StatusPending)
	assert.ErrorIs(t, err, ErrSlotConflict)

	reloaded, err := s.GetAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, reloaded.Status)
}

func TestDeleteAppointment_FreesSlot(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	a, err := s.InsertAppointment(ctx, newAppointment("comp_1", "09:00"))
	require.NoError(t, err)
	require.NoError(t, s.DeleteAppointment(ctx, a.ID))

	_, err = s.InsertAppointment(ctx, newAppointment("comp_1", "09:00"))
	assert.NoError(t, err)
}

func TestNotFoundOutcomes(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	_, err := s.GetAppointment(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = s.UpdateAppointmentStatus(ctx, "missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.ErrorIs(t, s.DeleteAppointment(ctx, "missing"), ErrAppointmentNotFound)
	assert.ErrorIs(t, s.DeleteCompany(ctx, "missing"), ErrCompanyNotFound)

	_, err = s.UpdateCompany(ctx, &domain.Company{ID: "missing"})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	_, err = s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	a, err := s.InsertAppointment(ctx, newAppointment("comp_1", "09:00"))
	require.NoError(t, err)

	a.Status = domain.StatusCompleted
	reloaded, err := s.GetAppointment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, reloaded.Status)
}

func TestActiveAppointmentsBetween(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	_, err := s.InsertAppointment(ctx, newAppointment("comp_1", "09:00"))
	require.NoError(t, err)
	cancelled := newAppointment("comp_1", "10:00")
	cancelled.Status = domain.StatusCancelled
	_, err = s.InsertAppointment(ctx, cancelled)
	require.NoError(t, err)
	nextMonth := newAppointment("comp_1", "09:00")
	nextMonth.Date = time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	_, err = s.InsertAppointment(ctx, nextMonth)
	require.NoError(t, err)

	got := s.ActiveAppointmentsBetween(ctx,
		time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.Len(t, got, 1)
	assert.Len(t, s.ActiveAppointmentsOn(ctx, visitDay), 1)
}

func TestDoSerializable_ConcurrentInsertsKeepSingleOccupant(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.DoSerializable(ctx, func(ctx context.Context) error {
				if len(s.ActiveAppointmentsOn(ctx, visitDay)) > 0 {
					return ErrSlotConflict
				}
				_, err := s.InsertAppointment(ctx, newAppointment(fmt.Sprintf("comp_%d", i), "09:00"))
				return err
			})
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Len(t, s.ActiveAppointmentsOn(ctx, visitDay), 1)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	u, err := s.FindUserByEmail(ctx, "ADMIN@sst.pro")
	require.NoError(t, err)
	assert.Equal(t, "admin_1", u.ID)

	_, err = s.UpdateUserProfile(ctx, "admin_1", "Admin", "carlos@sst.pro", nil)
	assert.ErrorIs(t, err, ErrEmailTaken)

	avatar := "https://example.com/a.png"
	updated, err := s.UpdateUserProfile(ctx, "admin_1", "Root", "root@sst.pro", &avatar)
	require.NoError(t, err)
	assert.Equal(t, "Root", updated.Name)
	assert.Equal(t, domain.RoleAdmin, updated.Role)
	require.NotNil(t, updated.Avatar)
	assert.Equal(t, avatar, *updated.Avatar)
}

func TestCompanies(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	c, err := s.InsertCompany(ctx, &domain.Company{Name: "Metalúrgica Silva"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)

	list := s.ListCompanies(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, c.ID, list[1].ID)

	c.Name = "Metalúrgica Silva S.A."
	_, err = s.UpdateCompany(ctx, c)
	require.NoError(t, err)
	got, err := s.GetCompany(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Metalúrgica Silva S.A.", got.Name)

	_, err = s.InsertCompany(ctx, &domain.Company{ID: "comp_1"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestSnapshotValidate(t *testing.T) {
	active := func(id, slot string) *domain.Appointment {
		a := newAppointment("comp_1", slot)
		a.ID = id
		return a
	}
	cancelled := active("c1", "09:00")
	cancelled.Status = domain.StatusCancelled

	tests := []struct {
		name     string
		snapshot Snapshot
		wantErr  error
	}{
		{
			name:     "valid",
			snapshot: Snapshot{Appointments: []*domain.Appointment{active("a1", "09:00"), active("a2", "10:00"), cancelled}},
		},
		{
			name:     "slot held twice",
			snapshot: Snapshot{Appointments: []*domain.Appointment{active("a1", "09:00"), active("a2", "09:00")}},
			wantErr:  ErrSlotConflict,
		},
		{
			name:     "duplicate appointment id",
			snapshot: Snapshot{Appointments: []*domain.Appointment{active("a2", "09:00"), active("a2", "10:00")}},
			wantErr:  ErrDuplicateID,
		},
		{
			name: "duplicate user id",
			snapshot: Snapshot{Users: []*domain.User{
				{ID: "u1", Role: domain.RoleAdmin},
				{ID: "u1", Role: domain.RoleTechnician},
			}},
			wantErr: ErrDuplicateID,
		},
		{
			name:     "duplicate company id",
			snapshot: Snapshot{Companies: []*domain.Company{{ID: "c"}, {ID: "c"}}},
			wantErr:  ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snapshot.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
