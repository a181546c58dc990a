package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SST-VisitService/internal/api/handlers"
	"github.com/m04kA/SST-VisitService/internal/domain"
)

type ctxKey string

const actorKey ctxKey = "actor"

const (
	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
)

// Authenticator проверяет токен сессии
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth требует заголовок Authorization: Bearer <token> и кладет пользователя в контекст
func Auth(authenticator Authenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			if header == "" || raw == "" || raw == header {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			actor, err := authenticator.Authenticate(r.Context(), raw)
			if err != nil {
				logger.Warn("%s %s - Authentication failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor кладет пользователя в контекст
func WithActor(ctx context.Context, actor *domain.User) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor возвращает пользователя, установленного middleware Auth
func GetActor(ctx context.Context) (*domain.User, bool) {
	actor, ok := ctx.Value(actorKey).(*domain.User)
	return actor, ok && actor != nil
}
