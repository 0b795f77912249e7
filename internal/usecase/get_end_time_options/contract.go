package get_end_time_options

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// PersonnelRepository интерфейс репозитория сотрудников
type PersonnelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
