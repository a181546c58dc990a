package ask_support

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/visibility"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidQuestion    = "question must be between 1 and 2000 characters"
	msgDisabled           = "support chat is disabled"
	msgForbidden          = "access denied"
)

type Handler struct {
	assistant SupportAssistant
	flags     FlagChecker
	validate  *validator.Validate
	logger    Logger
}

func NewHandler(assistant SupportAssistant, flags FlagChecker, validate *validator.Validate, logger Logger) *Handler {
	return &Handler{
		assistant: assistant,
		flags:     flags,
		validate:  validate,
		logger:    logger,
	}
}

// Handle POST /api/v1/support
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /support - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if !visibility.CapabilitiesFor(actor.Role).CanUseSupportAssistant {
		h.logger.Warn("POST /support - Access denied: user_id=%s", actor.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if !h.flags.IsEffective(domain.FlagAllowSupportChat) {
		h.logger.Warn("POST /support - Support chat disabled: user_id=%s", actor.ID)
		handlers.RespondForbidden(w, msgDisabled)
		return
	}

	var req AskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /support - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /support - Invalid question: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuestion)
		return
	}

	answer := h.assistant.Ask(r.Context(), strings.TrimSpace(req.Question))

	h.logger.Info("POST /support - Answered: user_id=%s", actor.ID)
	handlers.RespondJSON(w, http.StatusOK, AskResponse{Answer: answer})
}
