package departments

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	departmentRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/department"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments/models"
	personnelModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
	"github.com/m04kA/SMC-ResourcePlanner/internal/timeline"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Service сервис отделов
type Service struct {
	departmentRepo DepartmentRepository
	personnelRepo  PersonnelRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса отделов
func NewService(departmentRepo DepartmentRepository, personnelRepo PersonnelRepository, logger Logger) *Service {
	return &Service{
		departmentRepo: departmentRepo,
		personnelRepo:  personnelRepo,
		logger:         logger,
	}
}

// List возвращает все отделы
func (s *Service) List(ctx context.Context) (*models.DepartmentListResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.DepartmentListResponse{Departments: make([]models.DepartmentResponse, 0, len(departments))}
	for i := range departments {
		resp.Departments = append(resp.Departments, *models.FromDomainDepartment(&departments[i]))
	}
	return resp, nil
}

// Create создает отдел. Без цвета отделу назначается цвет палитры по порядку.
func (s *Service) Create(ctx context.Context, req *models.CreateDepartmentRequest) (*models.DepartmentResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	color := strings.TrimSpace(req.Color)
	if color != "" && !hexColor.MatchString(color) {
		return nil, fmt.Errorf("%w: color must be #RRGGBB", ErrInvalidInput)
	}

	if color == "" {
		existing, err := s.departmentRepo.List(ctx)
		if err != nil {
			s.logger.Error("Create: list departments: %v", err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}
		color = timeline.RoundRobin(timeline.Palette)(len(existing))
	}

	department, err := s.departmentRepo.Create(ctx, &domain.Department{
		ID:          uuid.NewString(),
		Name:        name,
		Color:       color,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, departmentRepo.ErrNameTaken) {
			return nil, ErrNameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: department id=%s name=%q created", department.ID, department.Name)
	return models.FromDomainDepartment(department), nil
}

// Members возвращает отдел и его сотрудников
func (s *Service) Members(ctx context.Context, id string) (*models.MembersResponse, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("Members: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Members - repository error: %v", ErrInternal, err)
	}

	people, err := s.personnelRepo.List(ctx, &department.ID)
	if err != nil {
		s.logger.Error("Members: list personnel for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Members - repository error: %v", ErrInternal, err)
	}

	return &models.MembersResponse{
		Department: *models.FromDomainDepartment(department),
		Members:    personnelModels.FromDomainPersonList(department.Members(people)).Personnel,
	}, nil
}
