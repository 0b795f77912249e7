package timeline

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// Layout computes the render geometry of a booking inside its overlap group.
//
// cellHeight is the height of one hour of the day grid in pixels. Every member
// of a group gets an equal-width column (columnCount = group size), so two
// members in different columns may still overlap in time; the group is not
// packed into fewer columns. Height is never below one pixel.
func Layout(booking domain.Booking, group domain.OverlapGroup, cellHeight float64) (domain.LayoutResult, error) {
	if math.IsNaN(cellHeight) || math.IsInf(cellHeight, 0) || cellHeight <= 0 {
		return domain.LayoutResult{}, fmt.Errorf("%w: %v", ErrInvalidCellHeight, cellHeight)
	}

	columnIndex := group.IndexOf(booking.ID)
	if columnIndex < 0 {
		return domain.LayoutResult{}, fmt.Errorf("%w: booking=%s", ErrBookingNotInGroup, booking.ID)
	}

	iv, err := toInterval(booking)
	if err != nil {
		return domain.LayoutResult{}, err
	}

	hourHeight := cellHeight / types.MinutesPerHour
	height := float64(iv.end-iv.start) * hourHeight
	if height < domain.MinBookingHeightPixels {
		height = domain.MinBookingHeightPixels
	}

	columnCount := group.Len()
	width := 100.0 / float64(columnCount)

	return domain.LayoutResult{
		BookingID:   booking.ID,
		Top:         float64(iv.start) * hourHeight,
		Height:      height,
		ColumnIndex: columnIndex,
		ColumnCount: columnCount,
		Left:        float64(columnIndex) * width,
		Width:       width,
	}, nil
}

// LayoutGroup lays out every member of a group in group order.
func LayoutGroup(group domain.OverlapGroup, cellHeight float64) ([]domain.LayoutResult, error) {
	results := make([]domain.LayoutResult, 0, group.Len())
	for _, b := range group.Bookings {
		res, err := Layout(b, group, cellHeight)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// CellHeight returns the hour height for a zoom level, clamped to [MinZoom, MaxZoom].
func CellHeight(base, zoom float64) float64 {
	return base * ClampZoom(zoom, domain.MinZoom, domain.MaxZoom)
}

// ClampZoom limits zoom to [min, max]; NaN maps to min.
func ClampZoom(zoom, min, max float64) float64 {
	if math.IsNaN(zoom) || zoom < min {
		return min
	}
	if zoom > max {
		return max
	}
	return zoom
}
