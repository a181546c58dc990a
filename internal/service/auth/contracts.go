package auth

import (
	"context"
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// UserStore интерфейс хранилища пользователей
type UserStore interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUserProfile(ctx context.Context, id, name, email string, avatar *string) (*domain.User, error)
}

// TimeProvider интерфейс текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
