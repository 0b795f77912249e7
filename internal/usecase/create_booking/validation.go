package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// validateRequest валидирует запрос и возвращает нормализованный шаблон бронирования
func validateRequest(req *Request) (domain.BookingTemplate, error) {
	switch req.Type {
	case domain.BookingTypeIndividual:
		if strings.TrimSpace(req.ResourceID) == "" {
			return domain.BookingTemplate{}, fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
		}
	case domain.BookingTypeDepartment:
		if strings.TrimSpace(req.DepartmentID) == "" {
			return domain.BookingTemplate{}, fmt.Errorf("%w: departmentId is required", ErrInvalidInput)
		}
	default:
		return domain.BookingTemplate{}, fmt.Errorf("%w: unknown booking type %q", ErrInvalidInput, req.Type)
	}

	projectName := strings.TrimSpace(req.ProjectName)
	if projectName == "" || len(projectName) > domain.MaxNameLength {
		return domain.BookingTemplate{}, fmt.Errorf("%w: projectName must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	// Нормализуем время: "9:00" -> "09:00"
	startTime, err := types.NewTimeStringFromString(req.StartTime.String())
	if err != nil {
		return domain.BookingTemplate{}, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if startTime == types.EndOfDay {
		return domain.BookingTemplate{}, fmt.Errorf("%w: startTime cannot be 24:00", ErrInvalidInput)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime.String())
	if err != nil {
		return domain.BookingTemplate{}, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	template := domain.BookingTemplate{
		ProjectName: projectName,
		ClientName:  strings.TrimSpace(req.ClientName),
		StartDate:   domain.DateOnly(req.StartDate),
		EndDate:     domain.DateOnly(req.EndDate),
		StartTime:   startTime,
		EndTime:     endTime,
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return domain.BookingTemplate{}, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if err := template.Validate(); err != nil {
		return domain.BookingTemplate{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	// Однодневное бронирование должно иметь положительную длительность
	if domain.SameDay(template.StartDate, template.EndDate) && startTime == endTime {
		return domain.BookingTemplate{}, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	return template, nil
}

// withinAvailability проверяет окно доступности; битое окно считается непригодным
func withinAvailability(resource domain.Resource, template domain.BookingTemplate) bool {
	if err := resource.Availability.Validate(); err != nil {
		return false
	}
	ok, err := domain.IsWithinAvailability(resource, template.StartTime, template.EndTime)
	return err == nil && ok
}
