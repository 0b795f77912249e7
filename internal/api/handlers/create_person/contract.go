package create_person

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

type PersonnelService interface {
	Create(ctx context.Context, req *models.CreatePersonRequest) (*models.PersonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
