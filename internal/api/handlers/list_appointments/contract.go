package list_appointments

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, actor *domain.User) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
