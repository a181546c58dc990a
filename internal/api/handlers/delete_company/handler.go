package delete_company

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/companies"
)

const (
	msgUnauthorized = "authentication required"
	msgForbidden    = "only administrators can manage companies"
	msgNotFound     = "company not found"
)

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

// Handle DELETE /api/v1/companies/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("DELETE /companies/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, companies.ErrAccessDenied):
			h.logger.Warn("DELETE /companies/{id} - Access denied: id=%s, user_id=%s", id, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, companies.ErrCompanyNotFound):
			h.logger.Warn("DELETE /companies/{id} - Company not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /companies/{id} - Failed to delete company: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /companies/{id} - Company deleted: id=%s, user_id=%s", id, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
