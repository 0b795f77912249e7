package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/psqlbuilder"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

const foreignKeyViolation = "23503"

var columns = []string{
	"id",
	"resource_id",
	"project_name",
	"client_name",
	"start_date",
	"end_date",
	"start_time",
	"end_time",
	"color",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование. ID и цвет назначаются вызывающей стороной.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"resource_id",
			"project_name",
			"client_name",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"color",
		).
		Values(
			booking.ID,
			booking.ResourceID,
			booking.ProjectName,
			booking.ClientName,
			domain.DateOnly(booking.StartDate),
			domain.DateOnly(booking.EndDate),
			booking.StartTime,
			booking.EndTime,
			booking.Color,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, booking.ResourceID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return booking, nil
}

// CreateBatch сохраняет несколько бронирований.
// Должен вызываться внутри транзакции: частичная вставка откатывается целиком.
func (r *Repository) CreateBatch(ctx context.Context, bookings []domain.Booking) ([]domain.Booking, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, ErrTransactionRequired
	}

	created := make([]domain.Booking, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		if _, err := r.Create(ctx, &b); err != nil {
			return nil, err
		}
		created = append(created, b)
	}
	return created, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return booking, nil
}

// List получает бронирования по фильтру.
// Период выбирает бронирования, пересекающиеся с [StartDate, EndDate]:
// многодневное бронирование попадает в выборку, даже если начинается раньше периода.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("bookings").
		OrderBy("start_date ASC", "start_time ASC", "id ASC")

	if len(filter.ResourceIDs) > 0 {
		builder = builder.Where(squirrel.Expr("resource_id = ANY(?)", pq.Array(filter.ResourceIDs)))
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"end_date": domain.DateOnly(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"start_date": domain.DateOnly(*filter.EndDate)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, *booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking читает строку без проверки времени: битые значения
// отсекаются при раскладке, а не при чтении
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		startTime, endTime   sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.ResourceID,
		&booking.ProjectName,
		&booking.ClientName,
		&booking.StartDate,
		&booking.EndDate,
		&startTime,
		&endTime,
		&booking.Color,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.StartTime = trimSeconds(startTime.String)
	booking.EndTime = trimSeconds(endTime.String)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return &booking, nil
}

// trimSeconds приводит TIME "HH:MM:SS" к "HH:MM", остальное оставляет как есть
func trimSeconds(raw string) types.TimeString {
	if parts := strings.Split(raw, ":"); len(parts) == 3 {
		return types.TimeString(parts[0] + ":" + parts[1])
	}
	return types.TimeString(raw)
}
