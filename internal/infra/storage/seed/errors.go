package seed

import "errors"

var (
	// ErrReadFile возвращается, если файл с данными не удалось прочитать
	ErrReadFile = errors.New("seed: failed to read file")

	// ErrDecode возвращается при некорректном YAML
	ErrDecode = errors.New("seed: failed to decode yaml")

	// ErrInvalidRecord возвращается, если запись не прошла проверку
	ErrInvalidRecord = errors.New("seed: invalid record")
)
