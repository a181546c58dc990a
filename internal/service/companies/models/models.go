package models

import (
	"strings"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// CompanyRequest данные для создания и изменения компании
type CompanyRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=200"`
	TaxID        string `json:"taxId" validate:"required,notblank,max=32"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"max=32"`
	Address      string `json:"address" validate:"max=300"`
}

// ToDomain конвертирует запрос в доменную модель
func (r *CompanyRequest) ToDomain(id string) *domain.Company {
	return &domain.Company{
		ID:           id,
		Name:         strings.TrimSpace(r.Name),
		TaxID:        strings.TrimSpace(r.TaxID),
		ContactEmail: strings.TrimSpace(r.ContactEmail),
		Phone:        strings.TrimSpace(r.Phone),
		Address:      strings.TrimSpace(r.Address),
	}
}

// CompanyResponse компания в ответах API
type CompanyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TaxID        string `json:"taxId"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// CompanyListResponse список компаний
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Total     int               `json:"total"`
}

// FromDomainCompany конвертирует компанию
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		TaxID:        c.TaxID,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		Address:      c.Address,
	}
}

// FromDomainCompanyList конвертирует список компаний
func FromDomainCompanyList(list []*domain.Company) *CompanyListResponse {
	out := make([]CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *FromDomainCompany(c))
	}
	return &CompanyListResponse{Companies: out, Total: len(out)}
}
