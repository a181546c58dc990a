package create_appointment

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/domain"
	createAppointment "github.com/m04kA/SST-VisitService/internal/usecase/create_appointment"
	"github.com/m04kA/SST-VisitService/pkg/logger"
)

type fakeUseCase struct {
	got *createAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{Appointment: &domain.Appointment{
		ID:        "a1",
		CompanyID: req.Actor.ID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    domain.StatusPending,
	}}, nil
}

var acme = &domain.User{ID: "acme", Role: domain.RoleOrganization}

func serve(h *Handler, actor *domain.User, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(middleware.WithActor(req.Context(), actor))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := serve(h, acme, `{"date":"2024-09-20","time":"09:00","description":"NR-12"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PENDING"`)
	assert.Contains(t, rec.Body.String(), `"date":"2024-09-20"`)

	require.NotNil(t, uc.got)
	assert.Equal(t, acme, uc.got.Actor)
	assert.True(t, uc.got.Date.Equal(time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "09:00", uc.got.Time.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		actor  *domain.User
		body   string
		err    error
		status int
	}{
		{"no actor", nil, `{}`, nil, http.StatusUnauthorized},
		{"bad json", acme, `{`, nil, http.StatusBadRequest},
		{"bad date", acme, `{"date":"20/09/2024","time":"09:00"}`, nil, http.StatusBadRequest},
		{"bad time", acme, `{"date":"2024-09-20","time":"9"}`, nil, http.StatusBadRequest},
		{"conflict", acme, `{"date":"2024-09-20","time":"09:00"}`, createAppointment.ErrSlotConflict, http.StatusConflict},
		{"forbidden", acme, `{"date":"2024-09-20","time":"09:00"}`, createAppointment.ErrAccessDenied, http.StatusForbidden},
		{"weekend", acme, `{"date":"2024-09-21","time":"09:00"}`, createAppointment.ErrClosedDay, http.StatusBadRequest},
		{"internal", acme, `{"date":"2024-09-20","time":"09:00"}`, fmt.Errorf("%w: boom", createAppointment.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.status, serve(h, tt.actor, tt.body).Code)
		})
	}
}
