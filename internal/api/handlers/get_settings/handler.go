package get_settings

import (
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/settings"
)

const msgUnauthorized = "authentication required"

// SettingsResponse HTTP response model
type SettingsResponse struct {
	Flags []settings.FlagState `json:"flags"`
}

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /settings - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	flags := h.service.Snapshot()

	h.logger.Info("GET /settings - Settings retrieved: user_id=%s", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, SettingsResponse{Flags: flags})
}
