package list_departments

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments/models"
)

type DepartmentService interface {
	List(ctx context.Context) (*models.DepartmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
