package list_alerts

import (
	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/alerts"
)

type AlertService interface {
	Alerts(actor *domain.User) ([]alerts.Alert, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
