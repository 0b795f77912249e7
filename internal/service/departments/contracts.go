package departments

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) (*domain.Department, error)
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
}

// PersonnelRepository интерфейс репозитория сотрудников
type PersonnelRepository interface {
	List(ctx context.Context, departmentID *string) ([]domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
