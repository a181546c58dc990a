package get_open_slots

import "errors"

var (
	// ErrInvalidInput возвращается, если дата не указана
	ErrInvalidInput = errors.New("get_open_slots: invalid input data")
)
