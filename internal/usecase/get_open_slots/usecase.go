package get_open_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

// UseCase use case для получения свободных слотов дня
type UseCase struct {
	store   AppointmentStore
	options Options
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store AppointmentStore, options Options, logger Logger) *UseCase {
	if len(options.SlotCatalog) == 0 {
		for _, s := range domain.DefaultSlotCatalog {
			options.SlotCatalog = append(options.SlotCatalog, types.TimeString(s))
		}
	}
	if options.LimitedThreshold <= 0 {
		options.LimitedThreshold = domain.DefaultLimitedThreshold
	}
	return &UseCase{store: store, options: options, logger: logger}
}

// Execute возвращает каталог за вычетом занятых слотов.
// Результат не кэшируется: каждый вызов читает текущие визиты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetOpenSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := domain.NormalizeDate(req.Date)
	uc.logger.Info("GetOpenSlots: date=%s", date.Format(domain.DateFormat))

	active := uc.store.ActiveAppointmentsOn(ctx, date)
	class := domain.ClassifyDay(date, len(active), len(uc.options.SlotCatalog), uc.options.LimitedThreshold)

	// В выходные слотов нет
	if domain.IsWeekend(date) {
		return &Response{Date: date, Class: class, Closed: true, Slots: []types.TimeString{}}, nil
	}

	occupied := make(map[types.TimeString]bool, len(active))
	for _, a := range active {
		occupied[a.Time] = true
	}

	slots := make([]types.TimeString, 0, len(uc.options.SlotCatalog))
	for _, s := range uc.options.SlotCatalog {
		if !occupied[s] {
			slots = append(slots, s)
		}
	}

	return &Response{Date: date, Class: class, Slots: slots}, nil
}
