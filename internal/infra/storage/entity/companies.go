package entity

import (
	"context"
	"fmt"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// ListCompanies возвращает компании в порядке добавления
func (s *Store) ListCompanies(ctx context.Context) []*domain.Company {
	unlock := s.readLock(ctx)
	defer unlock()

	out := make([]*domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c.Clone())
	}
	return out
}

func (s *Store) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	unlock := s.readLock(ctx)
	defer unlock()

	idx := s.companyIndex(id)
	if idx < 0 {
		return nil, ErrCompanyNotFound
	}
	return s.companies[idx].Clone(), nil
}

// InsertCompany добавляет компанию в конец списка, ID назначается, если не задан
func (s *Store) InsertCompany(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	unlock := s.writeLock(ctx)
	defer unlock()

	record := c.Clone()
	if record.ID == "" {
		record.ID = s.newID()
	} else if s.companyIndex(record.ID) >= 0 {
		return nil, fmt.Errorf("%w: company %s", ErrDuplicateID, record.ID)
	}

	s.companies = append(s.companies, record)
	return record.Clone(), nil
}

// UpdateCompany заменяет данные компании. Снимки названия в визитах не меняются.
func (s *Store) UpdateCompany(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	unlock := s.writeLock(ctx)
	defer unlock()

	idx := s.companyIndex(c.ID)
	if idx < 0 {
		return nil, ErrCompanyNotFound
	}

	s.companies[idx] = c.Clone()
	return c.Clone(), nil
}

// DeleteCompany удаляет компанию. Визиты компании остаются.
func (s *Store) DeleteCompany(ctx context.Context, id string) error {
	unlock := s.writeLock(ctx)
	defer unlock()

	idx := s.companyIndex(id)
	if idx < 0 {
		return ErrCompanyNotFound
	}

	s.companies = append(s.companies[:idx], s.companies[idx+1:]...)
	return nil
}

func (s *Store) companyIndex(id string) int {
	for i, c := range s.companies {
		if c.ID == id {
			return i
		}
	}
	return -1
}
