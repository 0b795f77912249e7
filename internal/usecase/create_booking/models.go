package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Type         domain.BookingType // individual или department
	ResourceID   string             // для individual
	DepartmentID string             // для department
	ProjectName  string
	ClientName   string
	StartDate    time.Time
	EndDate      time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
}

// CreatedBooking созданное бронирование с признаком попадания в окно доступности
type CreatedBooking struct {
	Booking            domain.Booking
	WithinAvailability bool
}

// Response модель ответа
type Response struct {
	Type     domain.BookingType
	Bookings []CreatedBooking

	// NoMembers выставляется, когда в отделе нет сотрудников и ничего не создано
	NoMembers bool
}
