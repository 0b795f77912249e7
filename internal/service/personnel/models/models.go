package models

import (
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// CreatePersonRequest запрос на создание сотрудника
type CreatePersonRequest struct {
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Email             string  `json:"email,omitempty"`
	DepartmentID      *string `json:"departmentId,omitempty"`
	AvailabilityStart *string `json:"availabilityStart,omitempty"` // по умолчанию 09:00
	AvailabilityEnd   *string `json:"availabilityEnd,omitempty"`   // по умолчанию 17:00
}

// UpdateAvailabilityRequest запрос на изменение окна доступности
type UpdateAvailabilityRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PersonResponse сотрудник в ответе API
type PersonResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	Email             string    `json:"email,omitempty"`
	DepartmentID      *string   `json:"departmentId,omitempty"`
	AvailabilityStart string    `json:"availabilityStart"`
	AvailabilityEnd   string    `json:"availabilityEnd"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PersonListResponse список сотрудников
type PersonListResponse struct {
	Personnel []PersonResponse `json:"personnel"`
}

// FromDomainPerson конвертирует сотрудника в ответ API.
// Время доступности отдается в отображаемом виде ("N/A" для битых значений).
func FromDomainPerson(person *domain.Resource) *PersonResponse {
	resp := &PersonResponse{
		ID:                person.ID,
		Name:              person.Name,
		Role:              person.Role,
		Email:             person.Email,
		AvailabilityStart: types.FormatTimeString(person.Availability.Start.String()),
		AvailabilityEnd:   types.FormatTimeString(person.Availability.End.String()),
		CreatedAt:         person.CreatedAt,
		UpdatedAt:         person.UpdatedAt,
	}
	if person.DepartmentID != "" {
		departmentID := person.DepartmentID
		resp.DepartmentID = &departmentID
	}
	return resp
}

// FromDomainPersonList конвертирует список сотрудников
func FromDomainPersonList(people []domain.Resource) *PersonListResponse {
	resp := &PersonListResponse{Personnel: make([]PersonResponse, 0, len(people))}
	for i := range people {
		resp.Personnel = append(resp.Personnel, *FromDomainPerson(&people[i]))
	}
	return resp
}
