package clear_alerts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/alerts"
)

const (
	msgUnauthorized = "authentication required"
	msgForbidden    = "only administrators can clear alerts"
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

// Handle DELETE /api/v1/alerts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /alerts - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.ClearAlerts(actor); err != nil {
		if errors.Is(err, alerts.ErrAccessDenied) {
			h.logger.Warn("DELETE /alerts - Access denied: user_id=%s", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("DELETE /alerts - Failed to clear alerts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /alerts - Alerts cleared: user_id=%s", actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
