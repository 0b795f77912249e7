package create_department

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments/models"
)

type DepartmentService interface {
	Create(ctx context.Context, req *models.CreateDepartmentRequest) (*models.DepartmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
