package settings

import "github.com/m04kA/SST-VisitService/internal/domain"

// FlagState сохраненное и эффективное значение флага
type FlagState struct {
	Key       domain.FlagKey  `json:"key"`
	Parent    *domain.FlagKey `json:"parent,omitempty"`
	Stored    bool            `json:"stored"`
	Effective bool            `json:"effective"`
}
