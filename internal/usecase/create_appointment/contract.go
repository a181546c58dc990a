package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// AppointmentStore интерфейс хранилища визитов
type AppointmentStore interface {
	ActiveAppointmentsOn(ctx context.Context, date time.Time) []*domain.Appointment
	InsertAppointment(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// UserRepository интерфейс для проверки назначенного техника
type UserRepository interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// Notifier интерфейс журнала событий и всплывающих уведомлений
type Notifier interface {
	PublishAdminAlert(message string)
	Success(userID, message string)
	Failure(userID, message string)
}

// Metrics интерфейс счетчиков
type Metrics interface {
	IncAppointmentsCreated()
	IncSlotConflicts()
}

// TransactionManager интерфейс для атомарной проверки и записи
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
