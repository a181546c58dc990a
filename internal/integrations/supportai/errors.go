package supportai

import "errors"

var (
	// ErrServiceUnavailable возвращается, когда ассистент недоступен (сеть, таймаут, код ответа, лимит)
	ErrServiceUnavailable = errors.New("supportai client: service unavailable")

	// ErrEmptyAnswer возвращается, когда модель ответила без текста
	ErrEmptyAnswer = errors.New("supportai client: empty answer")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("supportai client: internal error")
)
