package get_department_members

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments/models"
)

type DepartmentService interface {
	Members(ctx context.Context, id string) (*models.MembersResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
