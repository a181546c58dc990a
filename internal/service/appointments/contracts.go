package appointments

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// Store интерфейс хранилища визитов и компаний
type Store interface {
	ListAppointments(ctx context.Context) []*domain.Appointment
	GetAppointment(ctx context.Context, id string) (*domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	ListCompanies(ctx context.Context) []*domain.Company
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
}

// TransactionManager интерфейс для атомарной проверки и записи
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс всплывающих уведомлений
type Notifier interface {
	Success(userID, message string)
	Failure(userID, message string)
}

// Metrics интерфейс счетчиков
type Metrics interface {
	IncStatusTransition(from, to string)
	IncInvalidTransitions()
	IncSlotConflicts()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
