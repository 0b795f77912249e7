package domain

import "time"

// OverlapGroup is a maximal connected set of time-intersecting bookings for one resource/day.
// Bookings are sorted by (StartTime, ID). Derived on every layout pass, never stored.
type OverlapGroup struct {
	Bookings []Booking
}

// Len returns the number of bookings in the group
func (g OverlapGroup) Len() int {
	return len(g.Bookings)
}

// IndexOf returns the rank of the booking in the group order or -1
func (g OverlapGroup) IndexOf(bookingID string) int {
	for i := range g.Bookings {
		if g.Bookings[i].ID == bookingID {
			return i
		}
	}
	return -1
}

// LayoutResult is the render geometry of one booking in a day cell.
// Top and Height are pixels; Left and Width are percentages of the cell width.
type LayoutResult struct {
	BookingID   string
	Top         float64
	Height      float64
	ColumnIndex int
	ColumnCount int
	Left        float64
	Width       float64
}

// LayoutEntry is the outcome for one booking of a layout pass.
// Exactly one of Result and Err is set.
type LayoutEntry struct {
	Booking Booking // the visible day slice
	Result  *LayoutResult
	Err     error
}

// IsValid returns true if the booking was laid out
func (e *LayoutEntry) IsValid() bool {
	return e.Err == nil && e.Result != nil
}

// DayLayout is the layout of one resource on one day.
// Err is set when the whole row cannot be rendered (e.g. inverted availability window).
type DayLayout struct {
	ResourceID string
	Day        time.Time
	Entries    []LayoutEntry
	Err        error
}

// InvalidCount returns the number of bookings that failed to lay out
func (d *DayLayout) InvalidCount() int {
	count := 0
	for i := range d.Entries {
		if !d.Entries[i].IsValid() {
			count++
		}
	}
	return count
}
