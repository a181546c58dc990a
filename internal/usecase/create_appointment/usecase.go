package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/pkg/ptr"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

// Тексты уведомлений
const (
	msgScheduled    = "Appointment scheduled for %s. The assigned technician has been notified."
	msgSlotTaken    = "The %s slot on %s is already booked. Please choose another time."
	msgClosedDay    = "Visits cannot be scheduled on weekends."
	msgInvalidSlot  = "The selected time is not available for visits."
	msgRequestError = "Could not schedule the appointment. Please try again."
	alertNewRequest = "New visit request from %s for %s at %s"
)

// UseCase use case для создания визита
type UseCase struct {
	store        AppointmentStore
	users        UserRepository
	notifier     Notifier
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	validate     *validator.Validate
	options      Options
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store AppointmentStore,
	users UserRepository,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	timeProvider TimeProvider,
	validate *validator.Validate,
	options Options,
	logger Logger,
) *UseCase {
	if len(options.SlotCatalog) == 0 {
		for _, s := range domain.DefaultSlotCatalog {
			options.SlotCatalog = append(options.SlotCatalog, types.TimeString(s))
		}
	}
	if options.DefaultTechnicianID == "" {
		options.DefaultTechnicianID = domain.DefaultTechnicianID
	}

	return &UseCase{
		store:        store,
		users:        users,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		timeProvider: timeProvider,
		validate:     validate,
		options:      options,
		logger:       logger,
	}
}

// Execute выполняет use case создания визита.
// Проверка занятости слота и вставка выполняются атомарно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		uc.logger.Warn("CreateAppointment: empty request")
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	// 1. Нормализуем запрос (значения по умолчанию)
	in := normalizeRequest(req, uc.options.DefaultTechnicianID)

	uc.logger.Info("CreateAppointment: company=%s, technician=%s, date=%s, time=%s",
		in.CompanyID, in.TechnicianID, in.Date.Format(domain.DateFormat), in.Time)

	// 2. Проверяем права
	if err := validateActor(req.Actor, in.CompanyID); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}
	actorID := req.Actor.ID

	// 3. Валидация входных данных
	if err := validateInput(uc.validate, in, uc.options.SlotCatalog); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		switch {
		case errors.Is(err, ErrClosedDay):
			uc.notifier.Failure(actorID, msgClosedDay)
		case errors.Is(err, ErrInvalidTimeSlot):
			uc.notifier.Failure(actorID, msgInvalidSlot)
		}
		return nil, err
	}

	// 4. Проверяем, что визит назначается технику
	technician, err := uc.users.GetUser(ctx, in.TechnicianID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: technician id=%s not found", in.TechnicianID)
			return nil, fmt.Errorf("%w: %s not found", ErrInvalidTechnician, in.TechnicianID)
		}
		uc.logger.Error("CreateAppointment: failed to get technician id=%s: %v", in.TechnicianID, err)
		uc.notifier.Failure(actorID, msgRequestError)
		return nil, fmt.Errorf("%w: failed to get technician: %v", ErrInternal, err)
	}
	if technician.Role != domain.RoleTechnician {
		uc.logger.Warn("CreateAppointment: user id=%s has role %s", technician.ID, technician.Role)
		return nil, fmt.Errorf("%w: %s has role %s", ErrInvalidTechnician, technician.ID, technician.Role)
	}

	slot := types.TimeString(in.Time)
	var result *domain.Appointment

	// 5. Проверка слота и запись под одной блокировкой
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные визиты на дату
		for _, a := range uc.store.ActiveAppointmentsOn(txCtx, in.Date) {
			if a.Time == slot {
				return fmt.Errorf("%w: occupied by appointment id=%s", ErrSlotConflict, a.ID)
			}
		}

		// 5.2. Создаем визит в статусе PENDING
		created, err := uc.store.InsertAppointment(txCtx, &domain.Appointment{
			CompanyID:    in.CompanyID,
			CompanyName:  in.CompanyName,
			TechnicianID: technician.ID,
			Date:         in.Date,
			Time:         slot,
			Status:       domain.StatusPending,
			Description:  ptr.Ptr(in.Description),
			CreatedAt:    uc.timeProvider.Now(),
		})
		if err != nil {
			if errors.Is(err, entity.ErrSlotConflict) {
				return fmt.Errorf("%w: %v", ErrSlotConflict, err)
			}
			return fmt.Errorf("%w: failed to insert appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			uc.logger.Warn("CreateAppointment: %v", err)
			uc.metrics.IncSlotConflicts()
			uc.notifier.Failure(actorID, fmt.Sprintf(msgSlotTaken, slot, in.Date.Format(domain.DateFormat)))
			return nil, err
		}
		uc.logger.Error("CreateAppointment: %v", err)
		uc.notifier.Failure(actorID, msgRequestError)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Уведомления
	uc.metrics.IncAppointmentsCreated()
	uc.notifier.PublishAdminAlert(fmt.Sprintf(alertNewRequest, result.CompanyName, result.DateString(), result.Time))
	uc.notifier.Success(actorID, fmt.Sprintf(msgScheduled, result.DateString()))

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{Appointment: result}, nil
}
