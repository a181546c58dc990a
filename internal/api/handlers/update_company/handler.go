package update_company

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/companies"
	"github.com/m04kA/SST-VisitService/internal/service/companies/models"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgForbidden          = "only administrators can manage companies"
	msgNotFound           = "company not found"
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

// Handle PUT /api/v1/companies/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PUT /companies/{id} - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrAccessDenied):
			h.logger.Warn("PUT /companies/{id} - Access denied: id=%s, user_id=%s", id, actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, companies.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, companies.ErrCompanyNotFound):
			h.logger.Warn("PUT /companies/{id} - Company not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /companies/{id} - Failed to update company: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id} - Company updated: id=%s, user_id=%s", id, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
