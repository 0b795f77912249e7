package list_personnel

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

type PersonnelService interface {
	List(ctx context.Context, departmentID *string) (*models.PersonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
