package update_appointment_status

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/internal/service/appointments"
	"github.com/m04kA/SST-VisitService/pkg/logger"
)

type nopNotifier struct{}

func (nopNotifier) Success(string, string) {}
func (nopNotifier) Failure(string, string) {}

type nopMetrics struct{}

func (nopMetrics) IncStatusTransition(string, string) {}
func (nopMetrics) IncInvalidTransitions()             {}
func (nopMetrics) IncSlotConflicts()                  {}

func router(t *testing.T, actor *domain.User) http.Handler {
	t.Helper()

	store := entity.NewStore(entity.Snapshot{Appointments: []*domain.Appointment{
		{ID: "1", CompanyID: "comp_1", TechnicianID: "tech_1",
			Date: time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC), Time: "09:00", Status: domain.StatusPending},
	}})
	svc := appointments.NewService(store, store, nopNotifier{}, nopMetrics{}, logger.NewNop())

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithActor(req.Context(), actor)))
		})
	})
	r.HandleFunc("/api/v1/appointments/{id}/status", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	return r
}

func patch(h http.Handler, id, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id+"/status", strings.NewReader(body)))
	return rec
}

func TestHandle_Lifecycle(t *testing.T) {
	h := router(t, &domain.User{ID: "tech_1", Role: domain.RoleTechnician})

	rec := patch(h, "1", `{"status":"CONFIRMED"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"CONFIRMED"`)

	assert.Equal(t, http.StatusOK, patch(h, "1", `{"status":"COMPLETED"}`).Code)
	assert.Equal(t, http.StatusConflict, patch(h, "1", `{"status":"PENDING"}`).Code)
}

func TestHandle_Errors(t *testing.T) {
	tech := &domain.User{ID: "tech_1", Role: domain.RoleTechnician}
	org := &domain.User{ID: "comp_1", Role: domain.RoleOrganization}

	assert.Equal(t, http.StatusForbidden, patch(router(t, org), "1", `{"status":"CONFIRMED"}`).Code)
	assert.Equal(t, http.StatusNotFound, patch(router(t, tech), "missing", `{"status":"CONFIRMED"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(router(t, tech), "1", `{"status":"DONE"}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(router(t, tech), "1", `not json`).Code)
}

