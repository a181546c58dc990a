package get_me

import (
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/auth/models"
	"github.com/m04kA/SST-VisitService/internal/service/visibility"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /me - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.logger.Info("GET /me - user_id=%s, role=%s", actor.ID, actor.Role)
	handlers.RespondJSON(w, http.StatusOK, MeResponse{
		User:         *models.FromDomainUser(actor),
		Capabilities: visibility.CapabilitiesFor(actor.Role),
	})
}
