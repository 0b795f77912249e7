package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	departmentRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/department"
	personnelRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/personnel"
	"github.com/m04kA/SMC-ResourcePlanner/internal/timeline"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	personnelRepo  PersonnelRepository
	departmentRepo DepartmentRepository
	txManager      TransactionManager
	factory        BookingFactory
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	personnelRepo PersonnelRepository,
	departmentRepo DepartmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		personnelRepo:  personnelRepo,
		departmentRepo: departmentRepo,
		txManager:      txManager,
		factory:        timeline.NewExpander(nil, nil),
		logger:         logger,
	}
}

// Execute создает бронирование сотрудника или разворачивает бронирование на весь отдел
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: type=%s, resource=%s, department=%s, %s %s - %s %s",
		req.Type, req.ResourceID, req.DepartmentID,
		req.StartDate.Format(domain.DateFormat), req.StartTime, req.EndDate.Format(domain.DateFormat), req.EndTime)

	// 1. Валидация входных данных
	template, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Создание по типу бронирования
	if req.Type == domain.BookingTypeDepartment {
		return uc.createForDepartment(ctx, req.DepartmentID, template)
	}
	return uc.createIndividual(ctx, req.ResourceID, template)
}

func (uc *UseCase) createIndividual(ctx context.Context, resourceID string, template domain.BookingTemplate) (*Response, error) {
	// 2.1. Получаем сотрудника
	resource, err := uc.personnelRepo.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, personnelRepo.ErrPersonNotFound) {
			uc.logger.Warn("CreateBooking: resource id=%s not found", resourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get resource id=%s: %v", resourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 2.2. Проверяем окно доступности
	if !withinAvailability(*resource, template) {
		uc.logger.Warn("CreateBooking: %s-%s is outside availability %s-%s of resource id=%s",
			template.StartTime, template.EndTime, resource.Availability.Start, resource.Availability.End, resourceID)
		return nil, fmt.Errorf("%w: available %s-%s", ErrOutsideAvailability,
			resource.Availability.Start, resource.Availability.End)
	}

	// 2.3. Сохраняем
	booking := uc.factory.NewIndividual(template, resource.ID)
	created, err := uc.bookingRepo.Create(ctx, &booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%s created for resource id=%s", created.ID, resource.ID)
	return &Response{
		Type:     domain.BookingTypeIndividual,
		Bookings: []CreatedBooking{{Booking: *created, WithinAvailability: true}},
	}, nil
}

func (uc *UseCase) createForDepartment(ctx context.Context, departmentID string, template domain.BookingTemplate) (*Response, error) {
	// 2.1. Проверяем отдел
	if _, err := uc.departmentRepo.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
			uc.logger.Warn("CreateBooking: department id=%s not found", departmentID)
			return nil, ErrDepartmentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get department id=%s: %v", departmentID, err)
		return nil, fmt.Errorf("%w: failed to get department: %v", ErrInternal, err)
	}

	resp := &Response{Type: domain.BookingTypeDepartment, Bookings: make([]CreatedBooking, 0)}

	// 2.2. Разворачиваем и сохраняем в одной транзакции: либо все бронирования, либо ни одного
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		members, err := uc.personnelRepo.List(txCtx, &departmentID)
		if err != nil {
			return fmt.Errorf("%w: failed to list members: %v", ErrInternal, err)
		}

		bookings := uc.factory.Expand(template, departmentID, members)
		if len(bookings) == 0 {
			resp.NoMembers = true
			return nil
		}

		created, err := uc.bookingRepo.CreateBatch(txCtx, bookings)
		if err != nil {
			return fmt.Errorf("%w: failed to save bookings: %v", ErrInternal, err)
		}

		byID := make(map[string]domain.Resource, len(members))
		for _, m := range members {
			byID[m.ID] = m
		}
		for _, b := range created {
			resp.Bookings = append(resp.Bookings, CreatedBooking{
				Booking:            b,
				WithinAvailability: withinAvailability(byID[b.ResourceID], template),
			})
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("CreateBooking: department id=%s: %v", departmentID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if resp.NoMembers {
		uc.logger.Warn("CreateBooking: department id=%s has no members, nothing created", departmentID)
	} else {
		uc.logger.Info("CreateBooking: %d bookings created for department id=%s", len(resp.Bookings), departmentID)
	}
	return resp, nil
}
