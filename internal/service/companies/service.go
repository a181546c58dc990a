package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/infra/storage/entity"
	"github.com/m04kA/SST-VisitService/internal/service/companies/models"
	"github.com/m04kA/SST-VisitService/internal/service/visibility"
	"github.com/m04kA/SST-VisitService/internal/validation"
)

const (
	msgSaved    = "Company saved."
	msgRemoved  = "Company removed."
	msgNotFound = "Company not found."
)

// Service сервис справочника компаний
type Service struct {
	store    Store
	notifier Notifier
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса компаний
func NewService(store Store, notifier Notifier, validate *validator.Validate, logger Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		validate: validate,
		logger:   logger,
	}
}

// List возвращает видимые пользователю компании, отфильтрованные по строке поиска
func (s *Service) List(ctx context.Context, actor *domain.User, search string) (*models.CompanyListResponse, error) {
	if actor == nil {
		return nil, ErrAccessDenied
	}

	visibleAppointments := visibility.FilterAppointments(s.store.ListAppointments(ctx), actor)
	visible := visibility.FilterCompanies(s.store.ListCompanies(ctx), visibleAppointments, actor)

	matched := make([]*domain.Company, 0, len(visible))
	for _, c := range visible {
		if c.Matches(search) {
			matched = append(matched, c)
		}
	}

	s.logger.Info("ListCompanies: user=%s, search=%q, count=%d", actor.ID, search, len(matched))
	return models.FromDomainCompanyList(matched), nil
}

// Create добавляет компанию (только администратор)
func (s *Service) Create(ctx context.Context, actor *domain.User, req *models.CompanyRequest) (*models.CompanyResponse, error) {
	if err := s.checkAdmin(actor, "CreateCompany"); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("CreateCompany: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	created, err := s.store.InsertCompany(ctx, req.ToDomain(""))
	if err != nil {
		s.logger.Error("CreateCompany: failed to insert company: %v", err)
		return nil, fmt.Errorf("%w: failed to insert company: %v", ErrInternal, err)
	}

	s.notifier.Success(actor.ID, msgSaved)
	s.logger.Info("CreateCompany: company id=%s created", created.ID)
	return models.FromDomainCompany(created), nil
}

// Update изменяет данные компании (только администратор).
// Названия, сохраненные в визитах, не меняются.
func (s *Service) Update(ctx context.Context, actor *domain.User, id string, req *models.CompanyRequest) (*models.CompanyResponse, error) {
	if err := s.checkAdmin(actor, "UpdateCompany"); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdateCompany: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	updated, err := s.store.UpdateCompany(ctx, req.ToDomain(id))
	if err != nil {
		if errors.Is(err, entity.ErrCompanyNotFound) {
			s.logger.Warn("UpdateCompany: company id=%s not found", id)
			s.notifier.Failure(actor.ID, msgNotFound)
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("UpdateCompany: failed to update company id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update company: %v", ErrInternal, err)
	}

	s.notifier.Success(actor.ID, msgSaved)
	s.logger.Info("UpdateCompany: company id=%s updated", id)
	return models.FromDomainCompany(updated), nil
}

// Delete удаляет компанию (только администратор). Визиты компании остаются.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := s.checkAdmin(actor, "DeleteCompany"); err != nil {
		return err
	}

	if err := s.store.DeleteCompany(ctx, id); err != nil {
		if errors.Is(err, entity.ErrCompanyNotFound) {
			s.logger.Warn("DeleteCompany: company id=%s not found", id)
			s.notifier.Failure(actor.ID, msgNotFound)
			return ErrCompanyNotFound
		}
		s.logger.Error("DeleteCompany: failed to delete company id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to delete company: %v", ErrInternal, err)
	}

	s.notifier.Success(actor.ID, msgRemoved)
	s.logger.Info("DeleteCompany: company id=%s removed", id)
	return nil
}

func (s *Service) checkAdmin(actor *domain.User, op string) error {
	if actor == nil || !visibility.CapabilitiesFor(actor.Role).CanEditCompanies {
		s.logger.Warn("%s: access denied", op)
		return ErrAccessDenied
	}
	return nil
}
