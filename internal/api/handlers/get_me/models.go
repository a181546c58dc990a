package get_me

import (
	"github.com/m04kA/SST-VisitService/internal/service/auth/models"
	"github.com/m04kA/SST-VisitService/internal/service/visibility"
)

// MeResponse текущий пользователь и его возможности
type MeResponse struct {
	User         models.UserResponse     `json:"user"`
	Capabilities visibility.Capabilities `json:"capabilities"`
}
