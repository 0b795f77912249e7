package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	bookingModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

const warnEmptyDepartment = "в отделе нет сотрудников, бронирования не созданы"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Type         string `json:"type"` // "individual" (по умолчанию) или "department"
	ResourceID   string `json:"resourceId,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	ProjectName  string `json:"projectName"`
	ClientName   string `json:"clientName,omitempty"`
	StartDate    string `json:"startDate"`         // "2025-03-10"
	EndDate      string `json:"endDate,omitempty"` // по умолчанию равна startDate
	StartTime    string `json:"startTime"`         // "09:00"
	EndTime      string `json:"endTime"`           // "17:00"
}

// CreatedBookingResponse созданное бронирование
type CreatedBookingResponse struct {
	bookingModels.BookingResponse
	WithinAvailability bool `json:"withinAvailability"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Type     string                   `json:"type"`
	Bookings []CreatedBookingResponse `json:"bookings"`
	Warning  string                   `json:"warning,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	endDate := startDate
	if r.EndDate != "" {
		if endDate, err = time.Parse(domain.DateFormat, r.EndDate); err != nil {
			return nil, fmt.Errorf("endDate: %w", err)
		}
	}

	bookingType := domain.BookingType(r.Type)
	if bookingType == "" {
		bookingType = domain.BookingTypeIndividual
	}

	return &createBooking.Request{
		Type:         bookingType,
		ResourceID:   r.ResourceID,
		DepartmentID: r.DepartmentID,
		ProjectName:  r.ProjectName,
		ClientName:   r.ClientName,
		StartDate:    startDate,
		EndDate:      endDate,
		StartTime:    types.TimeString(r.StartTime),
		EndTime:      types.TimeString(r.EndTime),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		Type:     string(resp.Type),
		Bookings: make([]CreatedBookingResponse, 0, len(resp.Bookings)),
	}
	for i := range resp.Bookings {
		out.Bookings = append(out.Bookings, CreatedBookingResponse{
			BookingResponse:    *bookingModels.FromDomainBooking(&resp.Bookings[i].Booking),
			WithinAvailability: resp.Bookings[i].WithinAvailability,
		})
	}
	if resp.NoMembers {
		out.Warning = warnEmptyDepartment
	}
	return out
}
