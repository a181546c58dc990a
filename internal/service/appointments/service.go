package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/internal/service/appointments/models"
	companymodels "github.com/m04kA/SST-VisitService/internal/service/companies/models"
	"github.com/m04kA/SST-VisitService/internal/service/visibility"
)

// Тексты уведомлений
const (
	msgStatusUpdated     = "Appointment status updated to %s."
	msgRemoved           = "Appointment removed."
	msgNotFound          = "Appointment not found."
	msgInvalidTransition = "Cannot change status from %s to %s."
	msgSlotTaken         = "This time slot has been booked by another request."
)

// Service сервис просмотра, смены статуса и удаления визитов
type Service struct {
	store     Store
	txManager TransactionManager
	notifier  Notifier
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(store Store, txManager TransactionManager, notifier Notifier, metrics Metrics, logger Logger) *Service {
	return &Service{
		store:     store,
		txManager: txManager,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
	}
}

// List возвращает визиты, видимые пользователю, новые первыми
func (s *Service) List(ctx context.Context, actor *domain.User) (*models.AppointmentListResponse, error) {
	if actor == nil {
		return nil, ErrAccessDenied
	}

	visible := visibility.FilterAppointments(s.store.ListAppointments(ctx), actor)
	s.logger.Info("ListAppointments: user=%s, role=%s, count=%d", actor.ID, actor.Role, len(visible))

	return models.FromDomainAppointmentList(visible), nil
}

// Get возвращает визит вместе с компанией.
// Чужой визит выглядит как несуществующий.
func (s *Service) Get(ctx context.Context, actor *domain.User, id string) (*models.AppointmentDetailsResponse, error) {
	if actor == nil {
		return nil, ErrAccessDenied
	}

	appointment, err := s.getVisible(ctx, actor, id)
	if err != nil {
		s.logger.Warn("GetAppointment: id=%s, user=%s: %v", id, actor.ID, err)
		return nil, err
	}

	resp := &models.AppointmentDetailsResponse{AppointmentResponse: *models.FromDomainAppointment(appointment)}

	company, err := s.store.GetCompany(ctx, appointment.CompanyID)
	switch {
	case err == nil:
		resp.Company = companymodels.FromDomainCompany(company)
	case errors.Is(err, entity.ErrCompanyNotFound):
		// компания удалена, остается только снимок названия
	default:
		s.logger.Error("GetAppointment: failed to get company id=%s: %v", appointment.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	return resp, nil
}

// Stats считает показатели по видимым пользователю визитам
func (s *Service) Stats(ctx context.Context, actor *domain.User) (visibility.Stats, error) {
	if actor == nil {
		return visibility.Stats{}, ErrAccessDenied
	}

	visible := visibility.FilterAppointments(s.store.ListAppointments(ctx), actor)
	companies := visibility.FilterCompanies(s.store.ListCompanies(ctx), visible, actor)

	return visibility.ComputeStats(visible, companies), nil
}

// UpdateStatus переводит визит в новый статус по таблице переходов.
// Доступно администратору и назначенному технику.
func (s *Service) UpdateStatus(ctx context.Context, actor *domain.User, id, status string) (*models.AppointmentResponse, error) {
	if actor == nil {
		return nil, ErrAccessDenied
	}
	s.logger.Info("UpdateStatus: id=%s, status=%s, user=%s", id, status, actor.ID)

	// 1. Проверяем права роли
	if !visibility.CapabilitiesFor(actor.Role).CanChangeStatus {
		s.logger.Warn("UpdateStatus: role %s cannot change status", actor.Role)
		return nil, ErrAccessDenied
	}

	// 2. Разбираем статус
	next, err := domain.ParseAppointmentStatus(status)
	if err != nil {
		s.logger.Warn("UpdateStatus: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var (
		previous domain.AppointmentStatus
		updated  *domain.Appointment
	)

	// 3. Проверка перехода и запись атомарно
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := s.getVisible(txCtx, actor, id)
		if err != nil {
			return err
		}

		previous = current.Status
		if err := domain.ValidateTransition(current.Status, next); err != nil {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}

		result, err := s.store.UpdateAppointmentStatus(txCtx, id, next)
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrSlotConflict):
				return fmt.Errorf("%w: %v", ErrSlotConflict, err)
			case errors.Is(err, entity.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		updated = result
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound):
			s.logger.Warn("UpdateStatus: appointment id=%s not found for user=%s", id, actor.ID)
			s.notifier.Failure(actor.ID, msgNotFound)
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: %v", err)
			s.metrics.IncInvalidTransitions()
			s.notifier.Failure(actor.ID, fmt.Sprintf(msgInvalidTransition, previous, next))
		case errors.Is(err, ErrSlotConflict):
			s.logger.Warn("UpdateStatus: %v", err)
			s.metrics.IncSlotConflicts()
			s.notifier.Failure(actor.ID, msgSlotTaken)
		default:
			s.logger.Error("UpdateStatus: %v", err)
		}
		return nil, err
	}

	s.metrics.IncStatusTransition(string(previous), string(next))
	s.notifier.Success(actor.ID, fmt.Sprintf(msgStatusUpdated, next))
	s.logger.Info("UpdateStatus: appointment id=%s %s -> %s", id, previous, next)

	return models.FromDomainAppointment(updated), nil
}

// Delete удаляет визит. Доступно администратору и организации-владельцу.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id string) error {
	if actor == nil {
		return ErrAccessDenied
	}
	s.logger.Info("DeleteAppointment: id=%s, user=%s", id, actor.ID)

	caps := visibility.CapabilitiesFor(actor.Role)
	if !caps.CanDeleteAnyVisit && !caps.CanDeleteOwnVisits {
		s.logger.Warn("DeleteAppointment: role %s cannot delete visits", actor.Role)
		return ErrAccessDenied
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := s.getVisible(txCtx, actor, id); err != nil {
			return err
		}

		if err := s.store.DeleteAppointment(txCtx, id); err != nil {
			if errors.Is(err, entity.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			s.logger.Warn("DeleteAppointment: appointment id=%s not found for user=%s", id, actor.ID)
			s.notifier.Failure(actor.ID, msgNotFound)
		} else {
			s.logger.Error("DeleteAppointment: %v", err)
		}
		return err
	}

	s.notifier.Success(actor.ID, msgRemoved)
	s.logger.Info("DeleteAppointment: appointment id=%s removed", id)
	return nil
}

// getVisible возвращает визит, если пользователь может его видеть
func (s *Service) getVisible(ctx context.Context, actor *domain.User, id string) (*domain.Appointment, error) {
	appointment, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if !visibility.CanSee(actor, appointment) {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}
