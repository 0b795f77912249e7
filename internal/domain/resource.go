package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// Availability is the daily clock-time window during which a resource may be booked.
type Availability struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate requires both bounds to parse and Start to be strictly before End.
func (a Availability) Validate() error {
	start, err := a.Start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidAvailabilityWindow, err)
	}
	end, err := a.End.Minutes()
	if err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidAvailabilityWindow, err)
	}
	if start >= end {
		return fmt.Errorf("%w: %s-%s", ErrInvalidAvailabilityWindow, a.Start, a.End)
	}
	return nil
}

// Contains reports whether [startTime, endTime] fits inside the window.
func (a Availability) Contains(startTime, endTime types.TimeString) (bool, error) {
	availStart, err := a.Start.Minutes()
	if err != nil {
		return false, err
	}
	availEnd, err := a.End.Minutes()
	if err != nil {
		return false, err
	}
	start, err := startTime.Minutes()
	if err != nil {
		return false, err
	}
	end, err := endTime.Minutes()
	if err != nil {
		return false, err
	}
	return availStart <= start && end <= availEnd, nil
}

// Resource is a bookable person (personnel record).
type Resource struct {
	ID           string
	DepartmentID string // empty when the person belongs to no department
	Name         string
	Role         string
	Email        string
	Availability Availability
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InDepartment returns true if the resource belongs to the given department
func (r *Resource) InDepartment(departmentID string) bool {
	return departmentID != "" && r.DepartmentID == departmentID
}

// HasPassword returns true if the resource can log in
func (r *Resource) HasPassword() bool {
	return r.PasswordHash != ""
}

// IsWithinAvailability reports whether the interval fits the resource's availability window.
// It has no side effects and does not validate the window itself.
func IsWithinAvailability(resource Resource, startTime, endTime types.TimeString) (bool, error) {
	return resource.Availability.Contains(startTime, endTime)
}

// EndTimeOptions returns the slots a caller may offer as end time for startTime:
// every slot strictly after startTime and not after the availability end.
func EndTimeOptions(resource Resource, startTime types.TimeString, slots []types.TimeString) ([]types.TimeString, error) {
	start, err := startTime.Minutes()
	if err != nil {
		return nil, err
	}
	availEnd, err := resource.Availability.End.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrInvalidAvailabilityWindow, err)
	}

	options := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		m, err := slot.Minutes()
		if err != nil {
			return nil, err
		}
		if m > start && m <= availEnd {
			options = append(options, slot)
		}
	}
	return options, nil
}
