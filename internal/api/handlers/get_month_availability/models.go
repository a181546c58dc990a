package get_month_availability

import (
	"github.com/m04kA/SST-VisitService/internal/domain"
	getMonthAvailability "github.com/m04kA/SST-VisitService/internal/usecase/get_month_availability"
)

// DayResponse загрузка одного дня
type DayResponse struct {
	Day         int    `json:"day"`
	Date        string `json:"date"`
	Class       string `json:"class"` // NONE | LIMITED | FULL
	ActiveCount int    `json:"activeCount"`
}

// MonthAvailabilityResponse HTTP response model
type MonthAvailabilityResponse struct {
	Year         int           `json:"year"`
	Month        int           `json:"month"`
	DaysInMonth  int           `json:"daysInMonth"`
	FirstWeekday int           `json:"firstWeekday"` // 0 = воскресенье
	Days         []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getMonthAvailability.Response) *MonthAvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayResponse{
			Day:         d.Day,
			Date:        d.Date.Format(domain.DateFormat),
			Class:       string(d.Class),
			ActiveCount: d.ActiveCount,
		})
	}

	return &MonthAvailabilityResponse{
		Year:         resp.Year,
		Month:        int(resp.Month),
		DaysInMonth:  resp.DaysInMonth,
		FirstWeekday: int(resp.FirstWeekday),
		Days:         days,
	}
}
