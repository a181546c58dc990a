package create_company

import (
	"context"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/companies/models"
)

type CompanyService interface {
	Create(ctx context.Context, actor *domain.User, req *models.CompanyRequest) (*models.CompanyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
