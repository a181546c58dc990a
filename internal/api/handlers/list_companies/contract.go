package list_companies

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/companies/models"
)

type CompanyService interface {
	List(ctx context.Context, actor *domain.User, search string) (*models.CompanyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
