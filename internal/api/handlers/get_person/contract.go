package get_person

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

type PersonnelService interface {
	GetByID(ctx context.Context, id string) (*models.PersonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
