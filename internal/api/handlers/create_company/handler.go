package create_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/companies"
	"github.com/m04kA/SST-VisitService/internal/service/companies/models"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgForbidden          = "only administrators can manage companies"
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

// Handle POST /api/v1/companies
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /companies - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrAccessDenied):
			h.logger.Warn("POST /companies - Access denied: user_id=%s", actor.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, companies.ErrInvalidInput):
			h.logger.Warn("POST /companies - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /companies - Failed to create company: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies - Company created: id=%s, user_id=%s", resp.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
