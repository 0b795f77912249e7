package timeline

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// LayoutDay lays out the bookings of one resource for one day.
//
// The resource's availability window is validated first; an inverted window
// fails the whole row. Bookings of other resources or other days are ignored.
// A malformed booking does not abort the pass: its entry carries the error and
// the remaining bookings are grouped and laid out without it. Entries keep the
// order of the input slice.
func LayoutDay(resource domain.Resource, day time.Time, bookings []domain.Booking, cellHeight float64) domain.DayLayout {
	result := domain.DayLayout{
		ResourceID: resource.ID,
		Day:        domain.DateOnly(day),
	}

	if err := resource.Availability.Validate(); err != nil {
		result.Err = fmt.Errorf("resource=%s: %w", resource.ID, err)
		return result
	}

	entries := make([]domain.LayoutEntry, 0)
	valid := make([]domain.Booking, 0)
	position := make(map[string]int)

	for _, b := range bookings {
		if b.ResourceID != resource.ID || !b.CoversDay(day) {
			continue
		}

		slice, err := SliceForDay(b, day)
		if err != nil {
			entries = append(entries, domain.LayoutEntry{Booking: b, Err: err})
			continue
		}
		if _, exists := position[b.ID]; exists {
			entries = append(entries, domain.LayoutEntry{
				Booking: slice,
				Err:     fmt.Errorf("%w: %s", ErrDuplicateBooking, b.ID),
			})
			continue
		}

		position[b.ID] = len(entries)
		entries = append(entries, domain.LayoutEntry{Booking: slice})
		valid = append(valid, slice)
	}

	groups, err := FindOverlapGroups(valid)
	if err != nil {
		// slices are validated above; keep the pass total anyway
		for id, idx := range position {
			entries[idx].Err = fmt.Errorf("booking=%s: %w", id, err)
		}
		result.Entries = entries
		return result
	}

	for _, group := range groups {
		for _, b := range group.Bookings {
			idx := position[b.ID]
			res, err := Layout(b, group, cellHeight)
			if err != nil {
				entries[idx].Err = err
				continue
			}
			entries[idx].Result = &res
		}
	}

	result.Entries = entries
	return result
}

// LayoutBoard lays out every (resource, day) cell of a board.
//
// Cells are independent and computed concurrently with at most workers
// goroutines (workers <= 0 means unbounded). The result is ordered by the
// resources slice, then by days.
func LayoutBoard(resources []domain.Resource, days []time.Time, bookings []domain.Booking, cellHeight float64, workers int) []domain.DayLayout {
	byResource := make(map[string][]domain.Booking, len(resources))
	for _, b := range bookings {
		byResource[b.ResourceID] = append(byResource[b.ResourceID], b)
	}

	results := make([]domain.DayLayout, len(resources)*len(days))

	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}

	for ri := range resources {
		for di := range days {
			ri, di := ri, di
			g.Go(func() error {
				resource := resources[ri]
				results[ri*len(days)+di] = LayoutDay(resource, days[di], byResource[resource.ID], cellHeight)
				return nil
			})
		}
	}
	_ = g.Wait()

	return results
}

// BoardDays returns count consecutive calendar days starting at start.
func BoardDays(start time.Time, count int) []time.Time {
	days := make([]time.Time, 0, count)
	first := domain.DateOnly(start)
	for i := 0; i < count; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

// SortResources orders resources by name then id for a stable board.
func SortResources(resources []domain.Resource) {
	sort.SliceStable(resources, func(i, j int) bool {
		if resources[i].Name != resources[j].Name {
			return resources[i].Name < resources[j].Name
		}
		return resources[i].ID < resources[j].ID
	})
}
