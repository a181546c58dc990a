package delete_appointment

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

type AppointmentService interface {
	Delete(ctx context.Context, actor *domain.User, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
