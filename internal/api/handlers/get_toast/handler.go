package get_toast

import (
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service ToastService
	logger  Logger
}

func NewHandler(service ToastService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/toast
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /toast - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromToast(h.service.CurrentToast(actor.ID)))
}
