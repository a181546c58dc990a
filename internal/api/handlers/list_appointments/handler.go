package list_appointments

import (
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	resp, err := h.service.List(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: user_id=%s, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved: user_id=%s, count=%d", actor.ID, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
