package get_month_availability

import (
	"context"
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// AppointmentStore интерфейс хранилища визитов
type AppointmentStore interface {
	ActiveAppointmentsBetween(ctx context.Context, from, to time.Time) []*domain.Appointment
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
