package get_month_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных году или месяце
	ErrInvalidInput = errors.New("get_month_availability: invalid input data")
)
