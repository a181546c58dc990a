package get_month_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	getMonthAvailability "github.com/m04kA/SST-VisitService/internal/usecase/get_month_availability"
)

const (
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month, expected 1-12"
)

type Handler struct {
	useCase GetMonthAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?year=2024&month=9
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthAvailability.Request{Year: year, Month: time.Month(month)})
	if err != nil {
		if errors.Is(err, getMonthAvailability.ErrInvalidInput) {
			h.logger.Warn("GET /availability - Invalid input: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /availability - Failed to get availability: year=%d, month=%d, error=%v", year, month, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Availability retrieved: year=%d, month=%d", year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
