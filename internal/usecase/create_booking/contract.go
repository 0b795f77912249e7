package create_booking

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateBatch(ctx context.Context, bookings []domain.Booking) ([]domain.Booking, error)
}

// PersonnelRepository интерфейс репозитория сотрудников
type PersonnelRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context, departmentID *string) ([]domain.Resource, error)
}

// DepartmentRepository интерфейс репозитория отделов
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Department, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingFactory выдает ID и цвета новым бронированиям (подменяется в тестах)
type BookingFactory interface {
	NewIndividual(template domain.BookingTemplate, resourceID string) domain.Booking
	Expand(template domain.BookingTemplate, departmentID string, resources []domain.Resource) []domain.Booking
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
