package create_appointment

import (
	"time"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/types"
)

// Request модель запроса на создание визита
type Request struct {
	Actor        *domain.User     // Организация, запрашивающая визит
	CompanyID    string           // ID компании (пусто - ID организации)
	CompanyName  string           // Название для истории (пусто - название организации)
	TechnicianID string           // ID техника (пусто - техник по умолчанию)
	Date         time.Time        // Дата визита (без времени)
	Time         types.TimeString // Время из каталога слотов, например "09:00"
	Description  *string          // Описание (опционально)
}

// Options настройки записи
type Options struct {
	SlotCatalog         []types.TimeString
	DefaultTechnicianID string
}

// Response модель ответа с созданным визитом
type Response struct {
	Appointment *domain.Appointment
}
