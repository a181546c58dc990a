package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/validation"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

// input нормализованный запрос, который проверяется валидатором
type input struct {
	CompanyID    string `validate:"notblank"`
	CompanyName  string `validate:"notblank,max=200"`
	TechnicianID string `validate:"notblank"`
	Time         string `validate:"hhmm"`
	Description  string `validate:"max=500"`
	Date         time.Time
}

// normalizeRequest подставляет значения по умолчанию
func normalizeRequest(req *Request, defaultTechnicianID string) input {
	in := input{
		CompanyID:    strings.TrimSpace(req.CompanyID),
		CompanyName:  strings.TrimSpace(req.CompanyName),
		TechnicianID: strings.TrimSpace(req.TechnicianID),
		Time:         req.Time.String(),
		Date:         domain.NormalizeDate(req.Date),
	}

	if in.CompanyID == "" && req.Actor != nil {
		in.CompanyID = req.Actor.ID
	}
	if in.CompanyName == "" && req.Actor != nil {
		in.CompanyName = req.Actor.DisplayOrganization()
	}
	if in.TechnicianID == "" {
		in.TechnicianID = defaultTechnicianID
	}

	in.Description = domain.DefaultDescription
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		in.Description = strings.TrimSpace(*req.Description)
	}

	return in
}

// validateActor визит создает только организация и только для себя
func validateActor(actor *domain.User, companyID string) error {
	if actor == nil {
		return fmt.Errorf("%w: actor is required", ErrAccessDenied)
	}
	if actor.Role != domain.RoleOrganization {
		return fmt.Errorf("%w: role %s cannot request visits", ErrAccessDenied, actor.Role)
	}
	if companyID != actor.ID {
		return fmt.Errorf("%w: organization %s cannot request visits for %s", ErrAccessDenied, actor.ID, companyID)
	}
	return nil
}

// validateInput проверяет формат полей, день недели и каталог слотов
func validateInput(v *validator.Validate, in input, catalog []types.TimeString) error {
	if in.Date.Year() <= 1 {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := v.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	if domain.IsWeekend(in.Date) {
		return fmt.Errorf("%w: %s", ErrClosedDay, in.Date.Format(domain.DateFormat))
	}

	if !inCatalog(types.TimeString(in.Time), catalog) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, in.Time)
	}

	return nil
}

func inCatalog(slot types.TimeString, catalog []types.TimeString) bool {
	for _, s := range catalog {
		if s == slot {
			return true
		}
	}
	return false
}
