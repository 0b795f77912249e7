package domain

// Timeline grid defaults
const (
	DefaultCellHeight      = 160.0 // pixels per hour at zoom 1.0
	MinZoom                = 0.5
	MaxZoom                = 2.0
	ZoomStep               = 0.2
	DefaultDaysToShow      = 7
	MaxDaysToShow          = 31
	DefaultSlotInterval    = 30 // minutes
	MinBookingHeightPixels = 1.0
)

// Personnel validation constants
const (
	MinPasswordLength = 6
	MaxPasswordLength = 255
	MaxNameLength     = 200
)

// Default availability used when personnel is created without one
const (
	DefaultAvailabilityStart = "09:00"
	DefaultAvailabilityEnd   = "17:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingType how a booking request is fanned out
type BookingType string

const (
	BookingTypeIndividual BookingType = "individual"
	BookingTypeDepartment BookingType = "department"
)

// InvalidBookingMessage is shown in place of a booking that could not be laid out
const InvalidBookingMessage = "Invalid booking data"
