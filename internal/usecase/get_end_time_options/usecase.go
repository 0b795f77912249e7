package get_end_time_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	personnelRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/personnel"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// UseCase use case для получения допустимого времени окончания бронирования
type UseCase struct {
	personnelRepo PersonnelRepository
	slots         []types.TimeString
	logger        Logger
}

// NewUseCase создает use case; сетка слотов строится один раз на весь день
func NewUseCase(personnelRepo PersonnelRepository, slotInterval int, logger Logger) (*UseCase, error) {
	slots, err := types.GenerateTimeSlots("00:00", types.EndOfDay.String(), slotInterval)
	if err != nil {
		return nil, err
	}
	// 24:00 допустимо как время окончания
	slots = append(slots, types.EndOfDay)

	return &UseCase{
		personnelRepo: personnelRepo,
		slots:         slots,
		logger:        logger,
	}, nil
}

// Execute возвращает варианты времени начала или окончания для сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetEndTimeOptions: resource=%s, start=%s", req.ResourceID, req.StartTime)

	// 1. Валидация входных данных
	if req.ResourceID == "" {
		return nil, fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}
	startTime := req.StartTime
	if !startTime.IsZero() {
		normalized, err := types.NewTimeStringFromString(startTime.String())
		if err != nil {
			uc.logger.Warn("GetEndTimeOptions: invalid start time %q: %v", startTime, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		startTime = normalized
	}

	// 2. Получаем сотрудника
	resource, err := uc.personnelRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, personnelRepo.ErrPersonNotFound) {
			uc.logger.Warn("GetEndTimeOptions: resource id=%s not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("GetEndTimeOptions: failed to get resource id=%s: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	if err := resource.Availability.Validate(); err != nil {
		uc.logger.Warn("GetEndTimeOptions: resource id=%s: %v", resource.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAvailability, err)
	}

	resp := &Response{
		ResourceID:   resource.ID,
		Availability: resource.Availability,
		StartTime:    startTime,
		StartOptions: make([]types.TimeString, 0),
		EndOptions:   make([]types.TimeString, 0),
	}

	// 3. Без времени начала отдаем варианты начала
	if startTime.IsZero() {
		resp.StartOptions = uc.startOptions(resource.Availability)
		return resp, nil
	}

	// 4. Варианты окончания
	options, err := domain.EndTimeOptions(*resource, startTime, uc.slots)
	if err != nil {
		uc.logger.Error("GetEndTimeOptions: failed to build options: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resp.EndOptions = options

	return resp, nil
}

// startOptions слоты в полуинтервале [начало, конец) окна доступности
func (uc *UseCase) startOptions(availability domain.Availability) []types.TimeString {
	options := make([]types.TimeString, 0)
	for _, slot := range uc.slots {
		ok, err := availability.Contains(slot, slot)
		if err != nil || !ok || slot == availability.End {
			continue
		}
		options = append(options, slot)
	}
	return options
}
