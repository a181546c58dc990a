package create_appointment

import "errors"

var (
	// ErrAccessDenied возвращается, когда визит запрашивает не организация или не для себя
	ErrAccessDenied = errors.New("create_appointment: access denied")

	// ErrInvalidTimeSlot возвращается, когда время не входит в каталог слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: time is not in the slot catalog")

	// ErrClosedDay возвращается при попытке записи на выходной день
	ErrClosedDay = errors.New("create_appointment: no visits on weekends")

	// ErrInvalidTechnician возвращается, когда назначенный пользователь не техник
	ErrInvalidTechnician = errors.New("create_appointment: assignee is not a technician")

	// ErrSlotConflict возвращается, когда слот уже занят активным визитом
	ErrSlotConflict = errors.New("create_appointment: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
