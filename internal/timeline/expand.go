package timeline

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// Palette is the default set of booking display colours
var Palette = []string{
	"#818cf8", // indigo
	"#34d399", // emerald
	"#fb923c", // orange
	"#f472b6", // pink
	"#a78bfa", // purple
}

// IDGenerator produces a fresh booking id
type IDGenerator func() string

// ColorPicker returns the display colour of the i-th booking produced by one call
type ColorPicker func(i int) string

// RoundRobin picks colours from the palette in order, starting over for every call.
func RoundRobin(palette []string) ColorPicker {
	return func(i int) string {
		if len(palette) == 0 {
			return ""
		}
		return palette[i%len(palette)]
	}
}

// Expander fans a booking template out to department members.
type Expander struct {
	newID IDGenerator
	color ColorPicker
}

// NewExpander creates an expander; nil arguments fall back to uuid ids and the default palette.
func NewExpander(newID IDGenerator, color ColorPicker) *Expander {
	if newID == nil {
		newID = uuid.NewString
	}
	if color == nil {
		color = RoundRobin(Palette)
	}
	return &Expander{newID: newID, color: color}
}

// Expand produces one booking per resource of the department, in resources order.
// Every template field is copied; ID, ResourceID and Color are set per booking.
// No availability or overlap checks are made. Zero members yields an empty slice.
func (e *Expander) Expand(template domain.BookingTemplate, departmentID string, resources []domain.Resource) []domain.Booking {
	bookings := make([]domain.Booking, 0)
	for i := range resources {
		if !resources[i].InDepartment(departmentID) {
			continue
		}
		bookings = append(bookings, template.NewBooking(e.newID(), resources[i].ID, e.color(len(bookings))))
	}
	return bookings
}

// NewIndividual produces a single booking for one resource with a fresh id and colour.
func (e *Expander) NewIndividual(template domain.BookingTemplate, resourceID string) domain.Booking {
	return template.NewBooking(e.newID(), resourceID, e.color(0))
}

// ExpandDepartmentBooking expands the template with uuid ids and round-robin palette colours.
func ExpandDepartmentBooking(template domain.BookingTemplate, departmentID string, resources []domain.Resource) []domain.Booking {
	return NewExpander(nil, nil).Expand(template, departmentID, resources)
}
