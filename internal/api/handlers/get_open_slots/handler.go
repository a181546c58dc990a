package get_open_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/domain"
	getOpenSlots "github.com/m04kA/SST-VisitService/internal/usecase/get_open_slots"
)

const msgInvalidDate = "invalid date, expected YYYY-MM-DD"

type Handler struct {
	useCase GetOpenSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetOpenSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]

	date, err := domain.ParseDate(raw)
	if err != nil {
		h.logger.Warn("GET /availability/{date}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getOpenSlots.Request{Date: date})
	if err != nil {
		if errors.Is(err, getOpenSlots.ErrInvalidInput) {
			h.logger.Warn("GET /availability/{date}/slots - Invalid input: date=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /availability/{date}/slots - Failed to get slots: date=%s, error=%v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/{date}/slots - Slots retrieved: date=%s, open=%d", raw, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
