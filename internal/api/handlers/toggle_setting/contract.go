package toggle_setting

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/settings"
)

type SettingsService interface {
	Toggle(ctx context.Context, actor *domain.User, key string) (*settings.FlagState, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
