package clear_alerts

import "github.com/m04kA/SST-VisitService/internal/domain"

type AlertService interface {
	ClearAlerts(actor *domain.User) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
