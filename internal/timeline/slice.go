package timeline

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// SliceForDay returns the portion of the booking visible on day:
// [max(start, 00:00), min(end, 24:00)] where start applies only on StartDate
// and end only on EndDate. The slice has StartDate == EndDate == day.
func SliceForDay(booking domain.Booking, day time.Time) (domain.Booking, error) {
	if !booking.CoversDay(day) {
		return domain.Booking{}, fmt.Errorf("%w: booking=%s day=%s",
			ErrDayNotCovered, booking.ID, day.Format(domain.DateFormat))
	}

	start, err := booking.StartTime.Minutes()
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking=%s start: %w", booking.ID, err)
	}
	end, err := booking.EndTime.Minutes()
	if err != nil {
		return domain.Booking{}, fmt.Errorf("booking=%s end: %w", booking.ID, err)
	}

	if !domain.SameDay(day, booking.StartDate) {
		start = 0
	}
	if !domain.SameDay(day, booking.EndDate) {
		end = types.MinutesPerDay
	}
	if end < start {
		return domain.Booking{}, fmt.Errorf("%w: booking=%s %s-%s",
			domain.ErrInvalidBookingInterval, booking.ID, booking.StartTime, booking.EndTime)
	}

	slice := booking
	slice.StartDate = domain.DateOnly(day)
	slice.EndDate = slice.StartDate
	slice.StartTime = types.TimeString(types.FormatTime(float64(start)))
	slice.EndTime = types.TimeString(types.FormatTime(float64(end)))
	return slice, nil
}
