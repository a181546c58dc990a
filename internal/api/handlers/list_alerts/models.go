package list_alerts

import (
	"time"

	"github.com/m04kA/SST-VisitService/internal/service/alerts"
)

// AlertResponse запись журнала администратора
type AlertResponse struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// AlertListResponse HTTP response model
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Total  int             `json:"total"`
}

// FromAlerts конвертирует журнал в HTTP response
func FromAlerts(list []alerts.Alert) *AlertListResponse {
	out := make([]AlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, AlertResponse{Message: a.Message, CreatedAt: a.CreatedAt})
	}
	return &AlertListResponse{Alerts: out, Total: len(out)}
}
