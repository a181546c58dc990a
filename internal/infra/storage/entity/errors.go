package entity

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда визит не найден
	ErrAppointmentNotFound = errors.New("entity.store: appointment not found")

	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("entity.store: company not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("entity.store: user not found")

	// ErrSlotConflict возвращается, когда (дата, время) уже занято активным визитом
	ErrSlotConflict = errors.New("entity.store: slot already occupied")

	// ErrEmailTaken возвращается, когда email уже принадлежит другому пользователю
	ErrEmailTaken = errors.New("entity.store: email already in use")

	// ErrDuplicateID возвращается, когда идентификатор уже существует
	ErrDuplicateID = errors.New("entity.store: duplicate identifier")
)
