package personnel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var columns = []string{
	"id",
	"department_id",
	"name",
	"role",
	"email",
	"availability_start",
	"availability_end",
	"password_hash",
	"created_at",
	"updated_at",
}

// Repository репозиторий сотрудников (таблица personnel)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сотрудника. ID генерируется вызывающей стороной.
func (r *Repository) Create(ctx context.Context, person *domain.Resource) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("personnel").
		Columns(
			"id",
			"department_id",
			"name",
			"role",
			"email",
			"availability_start",
			"availability_end",
			"password_hash",
		).
		Values(
			person.ID,
			nullString(person.DepartmentID),
			person.Name,
			person.Role,
			nullString(person.Email),
			person.Availability.Start,
			person.Availability.End,
			nullString(person.PasswordHash),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	person.CreatedAt = createdAt.Time
	person.UpdatedAt = updatedAt.Time
	return person, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает сотрудника по email (для входа)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Resource, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("personnel").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	person, err := scanPerson(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan person: %v", ErrScanRow, op, err)
	}
	return person, nil
}

// List возвращает сотрудников, отсортированных по имени.
// departmentID != nil ограничивает выборку одним отделом.
func (r *Repository) List(ctx context.Context, departmentID *string) ([]domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("personnel").
		OrderBy("name ASC", "id ASC")
	if departmentID != nil {
		builder = builder.Where(squirrel.Eq{"department_id": *departmentID})
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

	people := make([]domain.Resource, 0)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan person: %v", ErrScanRow, err)
		}
		people = append(people, *person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return people, nil
}

// ListByIDs возвращает сотрудников с указанными ID
func (r *Repository) ListByIDs(ctx context.Context, ids []string) ([]domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("personnel").
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	people := make([]domain.Resource, 0, len(ids))
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByIDs - scan person: %v", ErrScanRow, err)
		}
		people = append(people, *person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByIDs - rows error: %v", ErrScanRow, err)
	}
	return people, nil
}

// UpdateAvailability меняет окно доступности сотрудника
func (r *Repository) UpdateAvailability(ctx context.Context, id string, availability domain.Availability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("personnel").
		Set("availability_start", availability.Start).
		Set("availability_end", availability.End).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAvailability - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPersonNotFound
	}
	return nil
}

// Delete удаляет сотрудника; его бронирования удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("personnel").
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
		return ErrPersonNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(row rowScanner) (*domain.Resource, error) {
	var (
		person                    domain.Resource
		departmentID, email, hash sql.NullString
		createdAt, updatedAt      sql.NullTime
	)

	err := row.Scan(
		&person.ID,
		&departmentID,
		&person.Name,
		&person.Role,
		&email,
		&person.Availability.Start,
		&person.Availability.End,
		&hash,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	person.DepartmentID = departmentID.String
	person.Email = email.String
	person.PasswordHash = hash.String
	person.CreatedAt = createdAt.Time
	person.UpdatedAt = updatedAt.Time
	return &person, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
