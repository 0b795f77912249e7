package get_timeline

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// PersonnelRepository интерфейс репозитория сотрудников
type PersonnelRepository interface {
	List(ctx context.Context, departmentID *string) ([]domain.Resource, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Resource, error)
}

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Department, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error)
}

// LayoutMetrics интерфейс для метрик раскладки (может быть nil)
type LayoutMetrics interface {
	ObserveLayout(service string, duration time.Duration, groupSizes []int, invalid int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
