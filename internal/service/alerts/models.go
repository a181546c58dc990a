package alerts

import "time"

// ToastKind тип всплывающего уведомления
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast всплывающее уведомление пользователя
type Toast struct {
	Message   string
	Kind      ToastKind
	ShownAt   time.Time
	ExpiresAt time.Time
}

// Alert запись журнала администратора
type Alert struct {
	Message   string
	CreatedAt time.Time
}
