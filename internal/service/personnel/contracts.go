package personnel

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// PersonnelRepository интерфейс репозитория сотрудников
type PersonnelRepository interface {
	Create(ctx context.Context, person *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, departmentID *string) ([]domain.Resource, error)
	UpdateAvailability(ctx context.Context, id string, availability domain.Availability) error
	Delete(ctx context.Context, id string) error
}

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Department, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
