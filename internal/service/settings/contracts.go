package settings

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// Repository интерфейс хранилища флагов
type Repository interface {
	LoadAll(ctx context.Context) (map[domain.FlagKey]bool, error)
	SaveAll(ctx context.Context, flags map[domain.FlagKey]bool) error
}

// TransactionManager интерфейс для записи флагов в транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
