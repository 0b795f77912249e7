package models

import (
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// ListBookingsRequest запрос списка бронирований
type ListBookingsRequest struct {
	ResourceID *string
	StartDate  *time.Time
	EndDate    *time.Time
}

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID          string    `json:"id"`
	ResourceID  string    `json:"resourceId"`
	ProjectName string    `json:"projectName"`
	ClientName  string    `json:"clientName,omitempty"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	filter := domain.BookingsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
	if r.ResourceID != nil {
		filter.ResourceIDs = []string{*r.ResourceID}
	}
	return filter
}

// FromDomainBooking конвертирует бронирование в ответ API.
// Нераспознанное время отображается как "N/A".
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          booking.ID,
		ResourceID:  booking.ResourceID,
		ProjectName: booking.ProjectName,
		ClientName:  booking.ClientName,
		StartDate:   booking.StartDate.Format(domain.DateFormat),
		EndDate:     booking.EndDate.Format(domain.DateFormat),
		StartTime:   types.FormatTimeString(booking.StartTime.String()),
		EndTime:     types.FormatTimeString(booking.EndTime.String()),
		Color:       booking.Color,
		CreatedAt:   booking.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for i := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(&bookings[i]))
	}
	return resp
}
