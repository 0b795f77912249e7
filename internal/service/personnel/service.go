package personnel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	departmentRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/department"
	personnelRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/personnel"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// Service сервис справочника сотрудников
type Service struct {
	personnelRepo  PersonnelRepository
	departmentRepo DepartmentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(
	personnelRepo PersonnelRepository,
	departmentRepo DepartmentRepository,
	logger Logger,
) *Service {
	return &Service{
		personnelRepo:  personnelRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// List возвращает сотрудников, опционально одного отдела
func (s *Service) List(ctx context.Context, departmentID *string) (*models.PersonListResponse, error) {
	people, err := s.personnelRepo.List(ctx, departmentID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d people", len(people))
	return models.FromDomainPersonList(people), nil
}

// GetByID получает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PersonResponse, error) {
	person, err := s.personnelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, personnelRepo.ErrPersonNotFound) {
			s.logger.Warn("GetByID: person id=%s not found", id)
			return nil, ErrPersonNotFound
		}
		s.logger.Error("GetByID: repository error for person id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPerson(person), nil
}

// Create создает сотрудника без учетной записи
func (s *Service) Create(ctx context.Context, req *models.CreatePersonRequest) (*models.PersonResponse, error) {
	s.logger.Info("Create: creating person name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	availability, err := buildAvailability(req.AvailabilityStart, req.AvailabilityEnd)
	if err != nil {
		s.logger.Warn("Create: invalid availability for %q: %v", name, err)
		return nil, err
	}

	person := &domain.Resource{
		ID:           uuid.NewString(),
		Name:         name,
		Role:         strings.TrimSpace(req.Role),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Availability: availability,
	}

	if req.DepartmentID != nil && *req.DepartmentID != "" {
		if err := s.ensureDepartment(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		person.DepartmentID = *req.DepartmentID
	}

	created, err := s.personnelRepo.Create(ctx, person)
	if err != nil {
		if errors.Is(err, personnelRepo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: person id=%s created", created.ID)
	return models.FromDomainPerson(created), nil
}

// UpdateAvailability меняет окно доступности сотрудника
func (s *Service) UpdateAvailability(ctx context.Context, id string, req *models.UpdateAvailabilityRequest) (*models.PersonResponse, error) {
	availability, err := buildAvailability(&req.Start, &req.End)
	if err != nil {
		s.logger.Warn("UpdateAvailability: invalid window for id=%s: %v", id, err)
		return nil, err
	}

	if err := s.personnelRepo.UpdateAvailability(ctx, id, availability); err != nil {
		if errors.Is(err, personnelRepo.ErrPersonNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("UpdateAvailability: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAvailability: id=%s now %s-%s", id, availability.Start, availability.End)
	return s.GetByID(ctx, id)
}

// Delete удаляет сотрудника вместе с его бронированиями
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.personnelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, personnelRepo.ErrPersonNotFound) {
			return ErrPersonNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: person id=%s deleted", id)
	return nil
}

func (s *Service) ensureDepartment(ctx context.Context, id string) error {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
			return ErrDepartmentNotFound
		}
		return fmt.Errorf("%w: department lookup: %v", ErrInternal, err)
	}
	return nil
}

// buildAvailability нормализует и проверяет окно; nil поля заменяются значениями по умолчанию
func buildAvailability(start, end *string) (domain.Availability, error) {
	rawStart, rawEnd := domain.DefaultAvailabilityStart, domain.DefaultAvailabilityEnd
	if start != nil {
		rawStart = *start
	}
	if end != nil {
		rawEnd = *end
	}

	startTime, err := types.NewTimeStringFromString(rawStart)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("%w: start: %v", ErrInvalidAvailability, err)
	}
	endTime, err := types.NewTimeStringFromString(rawEnd)
	if err != nil {
		return domain.Availability{}, fmt.Errorf("%w: end: %v", ErrInvalidAvailability, err)
	}

	availability := domain.Availability{Start: startTime, End: endTime}
	if err := availability.Validate(); err != nil {
		return domain.Availability{}, fmt.Errorf("%w: %v", ErrInvalidAvailability, err)
	}
	return availability, nil
}
