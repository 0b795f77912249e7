package auth

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// PersonnelRepository интерфейс репозитория сотрудников
type PersonnelRepository interface {
	Create(ctx context.Context, person *domain.Resource) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	GetByEmail(ctx context.Context, email string) (*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
