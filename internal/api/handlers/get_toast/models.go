package get_toast

import (
	"time"

	"github.com/m04kA/SST-VisitService/internal/service/alerts"
)

// ToastResponse активное уведомление пользователя
type ToastResponse struct {
	Message   string    `json:"message"`
	Kind      string    `json:"kind"` // success | error
	ExpiresAt time.Time `json:"expiresAt"`
}

// CurrentToastResponse HTTP response model, toast = null если уведомления нет
type CurrentToastResponse struct {
	Toast *ToastResponse `json:"toast"`
}

func fromToast(t alerts.Toast, ok bool) CurrentToastResponse {
	if !ok {
		return CurrentToastResponse{}
	}
	return CurrentToastResponse{Toast: &ToastResponse{
		Message:   t.Message,
		Kind:      string(t.Kind),
		ExpiresAt: t.ExpiresAt,
	}}
}
