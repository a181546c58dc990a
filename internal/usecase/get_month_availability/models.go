package get_month_availability

import (
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// Request запрос загрузки месяца (месяцы с 1)
type Request struct {
	Year  int
	Month time.Month
}

// Options параметры классификации дней
type Options struct {
	CatalogSize      int
	LimitedThreshold int
}

// Response календарь месяца
type Response struct {
	Year         int
	Month        time.Month
	DaysInMonth  int
	FirstWeekday time.Weekday // день недели 1-го числа, 0 = воскресенье
	Days         []Day
}

// Day загрузка одного дня
type Day struct {
	Day         int
	Date        time.Time
	Class       domain.CapacityClass
	ActiveCount int
}
