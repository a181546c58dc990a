package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SST-VisitService/internal/domain"
	createAppointment "github.com/m04kA/SST-VisitService/internal/usecase/create_appointment"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CompanyID    string  `json:"companyId,omitempty"`
	CompanyName  string  `json:"companyName,omitempty"`
	TechnicianID string  `json:"technicianId,omitempty"`
	Date         string  `json:"date"` // "2024-09-20"
	Time         string  `json:"time"` // "09:00"
	Description  *string `json:"description,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor *domain.User) (*createAppointment.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	return &createAppointment.Request{
		Actor:        actor,
		CompanyID:    r.CompanyID,
		CompanyName:  r.CompanyName,
		TechnicianID: r.TechnicianID,
		Date:         date,
		Time:         slot,
		Description:  r.Description,
	}, nil
}
