package get_stats

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/visibility"
)

type AppointmentService interface {
	Stats(ctx context.Context, actor *domain.User) (visibility.Stats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
