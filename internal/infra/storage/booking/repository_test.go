package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/dbmetrics"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/txmanager"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	db := dbmetrics.Wrap(sqlDB)
	return NewRepository(db), db, mock
}

func sample(id, resourceID string) domain.Booking {
	return domain.Booking{
		ID:          id,
		ResourceID:  resourceID,
		ProjectName: "Launch",
		StartDate:   day,
		EndDate:     day,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Color:       "#818cf8",
	}
}

func TestListOverlappingPeriod(t *testing.T) {
	repo, _, mock := newRepo(t)
	from, to := day, day.AddDate(0, 0, 6)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE resource_id = ANY($1) AND end_date >= $2 AND start_date <= $3 ORDER BY start_date ASC, start_time ASC, id ASC")).
		WithArgs(pq.Array([]string{"r1", "r2"}), from, to).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("b1", "r1", "Launch", "", day.AddDate(0, 0, -2), day, "15:00:00", "11:00:00", "#818cf8", day, day).
			AddRow("b2", "r2", "Broken", "Acme", day, day, "garbage", "10:00", "#34d399", day, day))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		ResourceIDs: []string{"r1", "r2"},
		StartDate:   &from,
		EndDate:     &to,
	})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, types.TimeString("15:00"), bookings[0].StartTime)
	assert.True(t, bookings[0].IsMultiDay())
	// malformed times are returned as stored
	assert.Equal(t, types.TimeString("garbage"), bookings[1].StartTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery("FROM bookings").WithArgs("b1").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateUnknownResource(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(&pq.Error{Code: foreignKeyViolation})

	b := sample("b1", "ghost")
	_, err := repo.Create(context.Background(), &b)
	assert.ErrorIs(t, err, ErrUnknownResource)
}

func TestCreateBatchRequiresTransaction(t *testing.T) {
	repo, _, _ := newRepo(t)
	_, err := repo.CreateBatch(context.Background(), []domain.Booking{sample("b1", "r1")})
	assert.ErrorIs(t, err, ErrTransactionRequired)
}

func TestCreateBatchInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	for _, id := range []string{"b1", "b2"} {
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(id, "r-"+id, "Launch", "", day, day, "09:00", "10:00", "#818cf8").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	}
	mock.ExpectCommit()

	var created []domain.Booking
	err := txmanager.NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		var err error
		created, err = repo.CreateBatch(ctx, []domain.Booking{sample("b1", "r-b1"), sample("b2", "r-b2")})
		return err
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, now, created[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatchRollsBackOnFailure(t *testing.T) {
	repo, db, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := txmanager.NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		_, err := repo.CreateBatch(ctx, []domain.Booking{sample("b1", "r1"), sample("b2", "r2")})
		return err
	})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs("b1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "b1"), ErrBookingNotFound)
}
