package models

import (
	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	personnelModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

// CreateDepartmentRequest запрос на создание отдела
type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Color       string  `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DepartmentResponse отдел в ответе API
type DepartmentResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	Color        string  `json:"color"`
	Description  *string `json:"description,omitempty"`
}

// DepartmentListResponse список отделов
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// MembersResponse состав отдела
type MembersResponse struct {
	Department DepartmentResponse               `json:"department"`
	Members    []personnelModels.PersonResponse `json:"members"`
}

// FromDomainDepartment конвертирует отдел в ответ API
func FromDomainDepartment(department *domain.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:           department.ID,
		Name:         department.Name,
		Abbreviation: department.Abbreviation(),
		Color:        department.Color,
		Description:  department.Description,
	}
}
