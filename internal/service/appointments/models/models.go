package models

import (
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
	companymodels "github.com/m04kA/SST-VisitService/internal/service/companies/models"
)

// AppointmentResponse визит в ответах API
type AppointmentResponse struct {
	ID           string    `json:"id"`
	CompanyID    string    `json:"companyId"`
	CompanyName  string    `json:"companyName"`
	TechnicianID string    `json:"technicianId"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time"` // HH:MM
	Status       string    `json:"status"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AppointmentDetailsResponse визит вместе с карточкой компании (если она еще существует)
type AppointmentDetailsResponse struct {
	AppointmentResponse
	Company *companymodels.CompanyResponse `json:"company,omitempty"`
}

// AppointmentListResponse список визитов
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует доменную модель в ответ
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:           a.ID,
		CompanyID:    a.CompanyID,
		CompanyName:  a.CompanyName,
		TechnicianID: a.TechnicianID,
		Date:         a.DateString(),
		Time:         a.Time.String(),
		Status:       string(a.Status),
		Description:  a.Description,
		CreatedAt:    a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список визитов
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: out, Total: len(out)}
}
