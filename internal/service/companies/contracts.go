package companies

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// Store интерфейс хранилища компаний
type Store interface {
	ListCompanies(ctx context.Context) []*domain.Company
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	InsertCompany(ctx context.Context, c *domain.Company) (*domain.Company, error)
	UpdateCompany(ctx context.Context, c *domain.Company) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id string) error
	ListAppointments(ctx context.Context) []*domain.Appointment
}

// Notifier интерфейс всплывающих уведомлений
type Notifier interface {
	Success(userID, message string)
	Failure(userID, message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
