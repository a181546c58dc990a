package get_settings

import "github.com/m04kA/SST-VisitService/internal/service/settings"

type SettingsService interface {
	Snapshot() []settings.FlagState
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
