package toggle_setting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/settings"
)

const (
	msgUnauthorized = "authentication required"
	msgForbidden    = "only administrators can change settings"
	msgUnknownFlag  = "unknown setting"
)

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

// Handle POST /api/v1/settings/{key}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /settings/{key}/toggle - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	state, err := h.service.Toggle(r.Context(), actor, key)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("POST /settings/{key}/toggle - Access denied: key=%s, user_id=%s", key, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrUnknownFlag):
			h.logger.Warn("POST /settings/{key}/toggle - Unknown flag: key=%s", key)
			handlers.RespondNotFound(w, msgUnknownFlag)

		default:
			h.logger.Error("POST /settings/{key}/toggle - Failed to toggle: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /settings/{key}/toggle - Flag toggled: key=%s, stored=%t", key, state.Stored)
	handlers.RespondJSON(w, http.StatusOK, state)
}
