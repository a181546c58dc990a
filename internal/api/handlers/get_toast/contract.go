package get_toast

import "github.com/m04kA/SST-VisitService/internal/service/alerts"

type ToastService interface {
	CurrentToast(userID string) (alerts.Toast, bool)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
