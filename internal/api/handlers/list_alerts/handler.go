package list_alerts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/alerts"
)

const (
	msgUnauthorized = "authentication required"
	msgForbidden    = "only administrators can read alerts"
)

type Handler struct {
	service AlertService
	logger  Logger
}

func NewHandler(service AlertService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/alerts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /alerts - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	list, err := h.service.Alerts(actor)
	if err != nil {
		if errors.Is(err, alerts.ErrAccessDenied) {
			h.logger.Warn("GET /alerts - Access denied: user_id=%s", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /alerts - Failed to read alerts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /alerts - Alerts retrieved: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, FromAlerts(list))
}
