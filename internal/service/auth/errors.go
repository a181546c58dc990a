package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается, когда email или пароль не подходят
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается для поддельного, просроченного или чужого токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrEmailTaken возвращается, когда email уже занят другим пользователем
	ErrEmailTaken = errors.New("auth: email already in use")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
