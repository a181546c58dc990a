package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда визит не найден или не виден пользователю
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrAccessDenied возвращается, когда у роли нет права на операцию
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrInvalidTransition возвращается при переходе вне таблицы статусов
	ErrInvalidTransition = errors.New("appointments: invalid status transition")

	// ErrSlotConflict возвращается, когда повторно открываемый визит занимает уже занятый слот
	ErrSlotConflict = errors.New("appointments: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
