package companies

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("companies: company not found")

	// ErrAccessDenied возвращается, когда пользователь не администратор
	ErrAccessDenied = errors.New("companies: access denied")

	// ErrInvalidInput возвращается при некорректных данных компании
	ErrInvalidInput = errors.New("companies: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("companies: internal error")
)
