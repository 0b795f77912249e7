package timeline

import "errors"

var (
	// ErrBookingNotInGroup is returned when a booking is laid out against a group it does not belong to
	ErrBookingNotInGroup = errors.New("timeline: booking is not a member of the overlap group")

	// ErrInvalidCellHeight is returned for a non-positive or non-finite cell height
	ErrInvalidCellHeight = errors.New("timeline: invalid cell height")

	// ErrDayNotCovered is returned when slicing a booking for a day outside its date range
	ErrDayNotCovered = errors.New("timeline: booking does not cover the day")

	// ErrDuplicateBooking is returned when the same booking id appears twice in one day cell
	ErrDuplicateBooking = errors.New("timeline: duplicate booking id")
)
