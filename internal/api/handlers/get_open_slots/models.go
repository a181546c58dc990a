package get_open_slots

import (
	"github.com/m04kA/SST-VisitService/internal/domain"
	getOpenSlots "github.com/m04kA/SST-VisitService/internal/usecase/get_open_slots"
)

// OpenSlotsResponse HTTP response model
type OpenSlotsResponse struct {
	Date   string   `json:"date"`
	Class  string   `json:"class"`
	Closed bool     `json:"closed"`
	Slots  []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOpenSlots.Response) *OpenSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &OpenSlotsResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		Class:  string(resp.Class),
		Closed: resp.Closed,
		Slots:  slots,
	}
}
