package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/api/middleware"
	"github.com/m04kA/SST-VisitService/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SST-VisitService/internal/usecase/create_appointment"
)

const (
	msgUnauthorized       = "authentication required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time, expected HH:MM"
	msgForbidden          = "only organizations can request visits for themselves"
	msgInvalidTimeSlot    = "time is not an available visit slot"
	msgClosedDay          = "no visits are scheduled on weekends"
	msgInvalidTechnician  = "assigned user is not a technician"
	msgSlotConflict       = "this time slot is already booked"
	msgInvalidInput       = "invalid appointment data"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: user_id=%s, date=%s, time=%s", actor.ID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrAccessDenied):
			h.logger.Warn("POST /appointments - Access denied: user_id=%s, role=%s", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createAppointment.ErrClosedDay):
			h.logger.Warn("POST /appointments - Closed day: user_id=%s, date=%s", actor.ID, req.Date)
			handlers.RespondBadRequest(w, msgClosedDay)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: user_id=%s, time=%s", actor.ID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidTechnician):
			h.logger.Warn("POST /appointments - Invalid technician: user_id=%s, technician_id=%s", actor.ID, req.TechnicianID)
			handlers.RespondBadRequest(w, msgInvalidTechnician)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, user_id=%s", result.Appointment.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainAppointment(result.Appointment))
}
