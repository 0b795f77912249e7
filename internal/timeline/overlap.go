package timeline

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// interval is a booking slice in minutes since midnight, half-open [start, end)
type interval struct {
	booking domain.Booking
	start   int
	end     int
}

func (iv interval) isInstant() bool {
	return iv.start == iv.end
}

func toInterval(b domain.Booking) (interval, error) {
	start, err := b.StartTime.Minutes()
	if err != nil {
		return interval{}, fmt.Errorf("booking=%s start: %w", b.ID, err)
	}
	end, err := b.EndTime.Minutes()
	if err != nil {
		return interval{}, fmt.Errorf("booking=%s end: %w", b.ID, err)
	}
	if end < start {
		return interval{}, fmt.Errorf("%w: booking=%s %s-%s",
			domain.ErrInvalidBookingInterval, b.ID, b.StartTime, b.EndTime)
	}
	return interval{booking: b, start: start, end: end}, nil
}

// byStartThenID is the canonical member order of a group
func byStartThenID(ivs []interval) func(i, j int) bool {
	return func(i, j int) bool {
		if ivs[i].start != ivs[j].start {
			return ivs[i].start < ivs[j].start
		}
		return ivs[i].booking.ID < ivs[j].booking.ID
	}
}

// FindOverlapGroups partitions the bookings of one resource/day into overlap groups.
//
// Bookings overlap when their half-open intervals [start, end) intersect, so a
// booking ending at 10:00 does not overlap one starting at 10:00. Grouping is
// transitive: the result is the connected components of the overlap graph.
// A zero-duration booking at t joins a booking [s, e) only if s <= t < e;
// two zero-duration bookings never overlap each other.
//
// Groups are ordered by their first member; members are sorted by (StartTime, ID).
func FindOverlapGroups(bookings []domain.Booking) ([]domain.OverlapGroup, error) {
	ivs := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		iv, err := toInterval(b)
		if err != nil {
			return nil, err
		}
		ivs = append(ivs, iv)
	}

	// Sweep order: start asc, bookings with duration before instants at the same
	// start so an instant can join a booking that begins at the same minute.
	sort.SliceStable(ivs, func(i, j int) bool {
		if ivs[i].start != ivs[j].start {
			return ivs[i].start < ivs[j].start
		}
		if ivs[i].isInstant() != ivs[j].isInstant() {
			return !ivs[i].isInstant()
		}
		return ivs[i].booking.ID < ivs[j].booking.ID
	})

	var (
		components [][]interval
		current    []interval
		currentEnd int
	)
	for _, iv := range ivs {
		if len(current) > 0 && iv.start < currentEnd {
			current = append(current, iv)
			if iv.end > currentEnd {
				currentEnd = iv.end
			}
			continue
		}
		if len(current) > 0 {
			components = append(components, current)
		}
		current = []interval{iv}
		currentEnd = iv.end
	}
	if len(current) > 0 {
		components = append(components, current)
	}

	groups := make([]domain.OverlapGroup, 0, len(components))
	for _, members := range components {
		sort.SliceStable(members, byStartThenID(members))
		group := domain.OverlapGroup{Bookings: make([]domain.Booking, len(members))}
		for i, m := range members {
			group.Bookings[i] = m.booking
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// Overlaps reports whether two bookings of the same day intersect under the grouping rules.
func Overlaps(a, b domain.Booking) (bool, error) {
	x, err := toInterval(a)
	if err != nil {
		return false, err
	}
	y, err := toInterval(b)
	if err != nil {
		return false, err
	}

	switch {
	case x.isInstant() && y.isInstant():
		return false, nil
	case x.isInstant():
		return y.start <= x.start && x.start < y.end, nil
	case y.isInstant():
		return x.start <= y.start && y.start < x.end, nil
	default:
		return x.start < y.end && y.start < x.end, nil
	}
}
