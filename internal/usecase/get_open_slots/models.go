package get_open_slots

import (
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

// Request запрос свободных слотов на дату
type Request struct {
	Date time.Time
}

// Options каталог слотов и порог ограниченной загрузки
type Options struct {
	SlotCatalog      []types.TimeString
	LimitedThreshold int
}

// Response свободные слоты в порядке каталога
type Response struct {
	Date   time.Time
	Class  domain.CapacityClass
	Closed bool // выходной день
	Slots  []types.TimeString
}
