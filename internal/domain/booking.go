package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// Booking is a scheduled assignment of a resource to a project.
// A booking may span several calendar days; StartTime applies to StartDate
// and EndTime to EndDate.
type Booking struct {
	ID          string
	ResourceID  string
	ProjectName string
	ClientName  string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Color       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingTemplate carries every booking field shared by the bookings of a department fan-out.
type BookingTemplate struct {
	ProjectName string
	ClientName  string
	StartDate   time.Time
	EndDate     time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
}

// NewBooking builds a booking from the template for one resource.
func (t BookingTemplate) NewBooking(id, resourceID, color string) Booking {
	return Booking{
		ID:          id,
		ResourceID:  resourceID,
		ProjectName: t.ProjectName,
		ClientName:  t.ClientName,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Color:       color,
	}
}

// Validate checks the template's dates and clock times.
// For a single-day template StartTime must not be after EndTime.
func (t BookingTemplate) Validate() error {
	if t.StartDate.IsZero() || t.EndDate.IsZero() {
		return fmt.Errorf("%w: dates are required", ErrInvalidDateRange)
	}
	if DateOnly(t.EndDate).Before(DateOnly(t.StartDate)) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidDateRange,
			t.StartDate.Format(DateFormat), t.EndDate.Format(DateFormat))
	}

	start, err := t.StartTime.Minutes()
	if err != nil {
		return err
	}
	end, err := t.EndTime.Minutes()
	if err != nil {
		return err
	}

	if SameDay(t.StartDate, t.EndDate) && end < start {
		return fmt.Errorf("%w: %s-%s", ErrInvalidBookingInterval, t.StartTime, t.EndTime)
	}
	return nil
}

// Template returns the shared part of the booking.
func (b *Booking) Template() BookingTemplate {
	return BookingTemplate{
		ProjectName: b.ProjectName,
		ClientName:  b.ClientName,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
	}
}

// IsMultiDay returns true if the booking spans more than one calendar day
func (b *Booking) IsMultiDay() bool {
	return !SameDay(b.StartDate, b.EndDate)
}

// CoversDay returns true if day lies within [StartDate, EndDate]
func (b *Booking) CoversDay(day time.Time) bool {
	d := DateOnly(day)
	return !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate))
}

// BookingsFilter selects bookings for a board or a listing
type BookingsFilter struct {
	ResourceIDs []string   // empty = all resources
	StartDate   *time.Time // bookings ending on or after this date
	EndDate     *time.Time // bookings starting on or before this date
}

// DateOnly strips the clock part, keeping the date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay returns true if both times fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
