package get_timeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	departmentRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/department"
	"github.com/m04kA/SMC-ResourcePlanner/internal/timeline"
)

// UseCase use case для расчета доски бронирований
type UseCase struct {
	personnelRepo  PersonnelRepository
	departmentRepo DepartmentRepository
	bookingRepo    BookingRepository
	metrics        LayoutMetrics
	settings       Settings
	logger         Logger
	now            func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	personnelRepo PersonnelRepository,
	departmentRepo DepartmentRepository,
	bookingRepo BookingRepository,
	metrics LayoutMetrics,
	settings Settings,
	logger Logger,
) *UseCase {
	return &UseCase{
		personnelRepo:  personnelRepo,
		departmentRepo: departmentRepo,
		bookingRepo:    bookingRepo,
		metrics:        metrics,
		settings:       settings,
		logger:         logger,
		now:            time.Now,
	}
}

// Execute раскладывает бронирования сотрудников по дням периода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация параметров
	start := req.Start
	if start.IsZero() {
		start = uc.now()
	}
	start = domain.DateOnly(start)

	days := req.Days
	if days == 0 {
		days = uc.settings.DefaultDays
	}
	if days < 0 || days > uc.settings.MaxDays {
		uc.logger.Warn("GetTimeline: days=%d is out of range", req.Days)
		return nil, fmt.Errorf("%w: days must be in 1..%d", ErrInvalidInput, uc.settings.MaxDays)
	}

	zoom := req.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) || zoom < 0 {
		return nil, fmt.Errorf("%w: invalid zoom", ErrInvalidInput)
	}
	zoom = timeline.ClampZoom(zoom, uc.settings.MinZoom, uc.settings.MaxZoom)
	cellHeight := uc.settings.BaseCellHeight * zoom

	uc.logger.Info("GetTimeline: start=%s, days=%d, zoom=%.2f, department=%s",
		start.Format(domain.DateFormat), days, zoom, req.DepartmentID)

	// 2. Получаем сотрудников
	resources, err := uc.loadResources(ctx, req)
	if err != nil {
		return nil, err
	}
	timeline.SortResources(resources)

	boardDays := timeline.BoardDays(start, days)
	resp := &Response{
		Start:      start,
		Days:       boardDays,
		Zoom:       zoom,
		CellHeight: cellHeight,
		Rows:       make([]Row, 0, len(resources)),
	}
	if len(resources) == 0 {
		return resp, nil
	}

	// 3. Получаем бронирования, пересекающиеся с периодом
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	last := boardDays[len(boardDays)-1]
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		ResourceIDs: ids,
		StartDate:   &start,
		EndDate:     &last,
	})
	if err != nil {
		uc.logger.Error("GetTimeline: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Раскладка
	started := time.Now()
	board := timeline.LayoutBoard(resources, boardDays, bookings, cellHeight, uc.settings.Workers)
	elapsed := time.Since(started)

	groupSizes := make([]int, 0)
	for ri, resource := range resources {
		row := Row{Resource: resource, Days: board[ri*days : (ri+1)*days]}
		for _, cell := range row.Days {
			if cell.Err != nil && row.Err == nil {
				row.Err = cell.Err
			}
			resp.Invalid += cell.InvalidCount()
			for _, entry := range cell.Entries {
				// у каждой группы ровно одна бронь в нулевой колонке
				if entry.IsValid() && entry.Result.ColumnIndex == 0 {
					groupSizes = append(groupSizes, entry.Result.ColumnCount)
				}
			}
		}
		if row.Err != nil {
			uc.logger.Warn("GetTimeline: row of resource id=%s is not rendered: %v", resource.ID, row.Err)
		}
		resp.Rows = append(resp.Rows, row)
	}

	if resp.Invalid > 0 {
		uc.logger.Warn("GetTimeline: %d bookings have invalid data", resp.Invalid)
	}
	if uc.metrics != nil {
		uc.metrics.ObserveLayout(uc.settings.ServiceName, elapsed, groupSizes, resp.Invalid)
	}

	uc.logger.Info("GetTimeline: %d resources, %d bookings laid out in %s", len(resources), len(bookings), elapsed)
	return resp, nil
}

func (uc *UseCase) loadResources(ctx context.Context, req *Request) ([]domain.Resource, error) {
	if len(req.ResourceIDs) > 0 {
		resources, err := uc.personnelRepo.ListByIDs(ctx, req.ResourceIDs)
		if err != nil {
			uc.logger.Error("GetTimeline: failed to list resources by ids: %v", err)
			return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
		}
		return filterDepartment(resources, req.DepartmentID), nil
	}

	var departmentID *string
	if req.DepartmentID != "" {
		if _, err := uc.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
			if errors.Is(err, departmentRepo.ErrDepartmentNotFound) {
				uc.logger.Warn("GetTimeline: department id=%s not found", req.DepartmentID)
				return nil, ErrDepartmentNotFound
			}
			uc.logger.Error("GetTimeline: failed to get department id=%s: %v", req.DepartmentID, err)
			return nil, fmt.Errorf("%w: failed to get department: %v", ErrInternal, err)
		}
		departmentID = &req.DepartmentID
	}

	resources, err := uc.personnelRepo.List(ctx, departmentID)
	if err != nil {
		uc.logger.Error("GetTimeline: failed to list resources: %v", err)
		return nil, fmt.Errorf("%w: failed to list resources: %v", ErrInternal, err)
	}
	return resources, nil
}

func filterDepartment(resources []domain.Resource, departmentID string) []domain.Resource {
	if departmentID == "" {
		return resources
	}
	filtered := make([]domain.Resource, 0, len(resources))
	for i := range resources {
		if resources[i].InDepartment(departmentID) {
			filtered = append(filtered, resources[i])
		}
	}
	return filtered
}
