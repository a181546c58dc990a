package get_appointment

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/appointments/models"
)

type AppointmentService interface {
	Get(ctx context.Context, actor *domain.User, id string) (*models.AppointmentDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
