package domain

import (
	"strings"
	"time"
	"unicode"
)

// Department groups personnel; bookings can be fanned out to all of its members.
type Department struct {
	ID          string
	Name        string
	Color       string
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Abbreviation returns the upper-cased initials of the department name ("Motion Design" -> "MD").
func (d *Department) Abbreviation() string {
	var b strings.Builder
	for _, word := range strings.Fields(d.Name) {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// Members returns the resources that belong to the department, preserving order.
func (d *Department) Members(resources []Resource) []Resource {
	members := make([]Resource, 0)
	for i := range resources {
		if resources[i].InDepartment(d.ID) {
			members = append(members, resources[i])
		}
	}
	return members
}
