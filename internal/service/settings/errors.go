package settings

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь не может менять настройки
	ErrAccessDenied = errors.New("settings: access denied")

	// ErrUnknownFlag возвращается для необъявленного ключа
	ErrUnknownFlag = errors.New("settings: unknown flag")

	// ErrInternal возвращается, когда не удалось сохранить флаги
	ErrInternal = errors.New("settings: internal error")
)
