package get_month_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// UseCase классифицирует каждый день месяца по загрузке
type UseCase struct {
	store   AppointmentStore
	options Options
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store AppointmentStore, options Options, logger Logger) *UseCase {
	if options.CatalogSize <= 0 {
		options.CatalogSize = len(domain.DefaultSlotCatalog)
	}
	if options.LimitedThreshold <= 0 {
		options.LimitedThreshold = domain.DefaultLimitedThreshold
	}
	return &UseCase{store: store, options: options, logger: logger}
}

// Execute считает активные визиты по дням месяца.
// Загрузка общая для всех ролей: занятый слот занят для всех.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthAvailability: year=%d, month=%d", req.Year, req.Month)

	// 1. Валидация
	if req.Month < time.January || req.Month > time.December {
		uc.logger.Warn("GetMonthAvailability: invalid month %d", req.Month)
		return nil, fmt.Errorf("%w: month must be 1..12", ErrInvalidInput)
	}
	if req.Year < 1970 || req.Year > 9999 {
		uc.logger.Warn("GetMonthAvailability: invalid year %d", req.Year)
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}

	// 2. Границы месяца
	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := domain.DaysInMonth(req.Year, req.Month)
	next := first.AddDate(0, 0, daysInMonth)

	// 3. Активные визиты за месяц
	counts := make(map[int]int, daysInMonth)
	for _, a := range uc.store.ActiveAppointmentsBetween(ctx, first, next) {
		counts[a.Date.Day()]++
	}

	// 4. Классификация дней
	days := make([]Day, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := first.AddDate(0, 0, d-1)
		days = append(days, Day{
			Day:         d,
			Date:        date,
			Class:       domain.ClassifyDay(date, counts[d], uc.options.CatalogSize, uc.options.LimitedThreshold),
			ActiveCount: counts[d],
		})
	}

	return &Response{
		Year:         req.Year,
		Month:        req.Month,
		DaysInMonth:  daysInMonth,
		FirstWeekday: domain.FirstWeekday(req.Year, req.Month),
		Days:         days,
	}, nil
}
