package get_stats

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

// Handle GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /stats - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	stats, err := h.service.Stats(r.Context(), actor)
	if err != nil {
		h.logger.Error("GET /stats - Failed to compute stats: user_id=%s, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stats - Stats computed: user_id=%s, total=%d", actor.ID, stats.Total)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
