package timeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

func TestLayoutSingleBooking(t *testing.T) {
	b := booking("a", "09:30", "11:00")
	group := domain.OverlapGroup{Bookings: []domain.Booking{b}}

	res, err := Layout(b, group, 160)
	require.NoError(t, err)

	assert.Equal(t, "a", res.BookingID)
	assert.InDelta(t, 9.5*160, res.Top, 1e-9)
	assert.InDelta(t, 1.5*160, res.Height, 1e-9)
	assert.Equal(t, 0, res.ColumnIndex)
	assert.Equal(t, 1, res.ColumnCount)
	assert.InDelta(t, 100.0, res.Width, 1e-9)
	assert.InDelta(t, 0.0, res.Left, 1e-9)
}

func TestLayoutTransitiveGroupScenario(t *testing.T) {
	groups, err := FindOverlapGroups([]domain.Booking{
		booking("B1", "09:00", "10:00"),
		booking("B2", "09:30", "10:30"),
		booking("B3", "10:00", "11:00"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)

	results, err := LayoutGroup(groups[0], 100)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, 3, res.ColumnCount)
		assert.Equal(t, i, res.ColumnIndex)
		assert.InDelta(t, 100.0/3, res.Width, 1e-9)
		assert.InDelta(t, float64(i)*100.0/3, res.Left, 1e-9)
	}
	assert.Equal(t, "B1", results[0].BookingID)
	assert.Equal(t, "B3", results[2].BookingID)

	// B1 and B3 do not overlap but still share the equal division
	assert.InDelta(t, 9*100.0, results[0].Top, 1e-9)
	assert.InDelta(t, 10*100.0, results[2].Top, 1e-9)
}

func TestLayoutZeroDurationHasMinimumHeight(t *testing.T) {
	z := booking("z", "12:00", "12:00")
	group := domain.OverlapGroup{Bookings: []domain.Booking{z}}

	res, err := Layout(z, group, 160)
	require.NoError(t, err)
	assert.Greater(t, res.Height, 0.0)
	assert.Equal(t, domain.MinBookingHeightPixels, res.Height)
	assert.InDelta(t, 12*160.0, res.Top, 1e-9)
}

func TestLayoutTinyDurationAtSmallZoom(t *testing.T) {
	minute := booking("x", "09:00", "09:01")
	res, err := Layout(minute, domain.OverlapGroup{Bookings: []domain.Booking{minute}}, 30)
	require.NoError(t, err)
	// one minute at 30px/hour is half a pixel
	assert.Equal(t, domain.MinBookingHeightPixels, res.Height)
}

func TestLayoutIsIdempotent(t *testing.T) {
	groups, err := FindOverlapGroups([]domain.Booking{
		booking("a", "09:00", "10:00"),
		booking("b", "09:15", "09:45"),
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)

	for _, b := range groups[0].Bookings {
		first, err := Layout(b, groups[0], 160)
		require.NoError(t, err)
		second, err := Layout(b, groups[0], 160)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestLayoutErrors(t *testing.T) {
	a := booking("a", "09:00", "10:00")
	group := domain.OverlapGroup{Bookings: []domain.Booking{a}}

	_, err := Layout(booking("other", "09:00", "10:00"), group, 160)
	assert.ErrorIs(t, err, ErrBookingNotInGroup)

	for _, h := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err = Layout(a, group, h)
		assert.ErrorIs(t, err, ErrInvalidCellHeight)
	}

	inverted := booking("inv", "11:00", "10:00")
	_, err = Layout(inverted, domain.OverlapGroup{Bookings: []domain.Booking{inverted}}, 160)
	assert.ErrorIs(t, err, domain.ErrInvalidBookingInterval)
}

func TestCellHeight(t *testing.T) {
	assert.InDelta(t, 160.0, CellHeight(160, 1), 1e-9)
	assert.InDelta(t, 80.0, CellHeight(160, 0.1), 1e-9)
	assert.InDelta(t, 320.0, CellHeight(160, 5), 1e-9)
	assert.InDelta(t, 80.0, CellHeight(160, math.NaN()), 1e-9)
	assert.InDelta(t, 192.0, CellHeight(160, 1.2), 1e-9)
}

func TestClampZoom(t *testing.T) {
	assert.Equal(t, 0.25, ClampZoom(0.1, 0.25, 3))
	assert.Equal(t, 3.0, ClampZoom(4, 0.25, 3))
	assert.Equal(t, 1.4, ClampZoom(1.4, 0.25, 3))
}
