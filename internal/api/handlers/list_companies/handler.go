package list_companies

import (
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
)

const msgUnauthorized = "authentication required"

type Handler struct {
	service CompanyService
	logger  Logger
}

func NewHandler(service CompanyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies?search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /companies - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	search := r.URL.Query().Get("search")

	resp, err := h.service.List(r.Context(), actor, search)
	if err != nil {
		h.logger.Error("GET /companies - Failed to list companies: user_id=%s, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies - Companies retrieved: user_id=%s, count=%d", actor.ID, resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
