package domain

import "errors"

var (
	// ErrInvalidAvailabilityWindow is returned when a resource's availability start is not before its end.
	ErrInvalidAvailabilityWindow = errors.New("domain: invalid availability window")

	// ErrInvalidBookingInterval is returned when a booking (or its day slice) ends before it starts.
	ErrInvalidBookingInterval = errors.New("domain: invalid booking interval")

	// ErrInvalidDateRange is returned when a booking's end date is before its start date.
	ErrInvalidDateRange = errors.New("domain: invalid booking date range")
)
