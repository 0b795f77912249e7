package department

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/psqlbuilder"
)

var columns = []string{"id", "name", "color", "description", "created_at", "updated_at"}

// Repository репозиторий отделов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отделов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отдел
func (r *Repository) Create(ctx context.Context, department *domain.Department) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("departments").
		Columns("id", "name", "color", "description").
		Values(department.ID, department.Name, department.Color, department.Description).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, ErrNameTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	department.CreatedAt = createdAt.Time
	department.UpdatedAt = updatedAt.Time
	return department, nil
}

// GetByID получает отдел по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		department           domain.Department
		description          sql.NullString
		createdAt, updatedAt sql.NullTime
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&department.ID,
		&department.Name,
		&department.Color,
		&description,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan department: %v", ErrScanRow, err)
	}

	if description.Valid {
		department.Description = &description.String
	}
	department.CreatedAt = createdAt.Time
	department.UpdatedAt = updatedAt.Time
	return &department, nil
}

// List возвращает все отделы по названию
func (r *Repository) List(ctx context.Context) ([]domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("departments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	departments := make([]domain.Department, 0)
	for rows.Next() {
		var (
			department           domain.Department
			description          sql.NullString
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Color,
			&description,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan department: %v", ErrScanRow, err)
		}
		if description.Valid {
			department.Description = &description.String
		}
		department.CreatedAt = createdAt.Time
		department.UpdatedAt = updatedAt.Time
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return departments, nil
}
