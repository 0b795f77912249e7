package get_timeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	departmentRepo "github.com/m04kA/SMC-ResourcePlanner/internal/infra/storage/department"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

type personnelRepoMock struct{ mock.Mock }

func (m *personnelRepoMock) List(ctx context.Context, departmentID *string) ([]domain.Resource, error) {
	args := m.Called(ctx, departmentID)
	people, _ := args.Get(0).([]domain.Resource)
	return people, args.Error(1)
}

func (m *personnelRepoMock) ListByIDs(ctx context.Context, ids []string) ([]domain.Resource, error) {
	args := m.Called(ctx, ids)
	people, _ := args.Get(0).([]domain.Resource)
	return people, args.Error(1)
}

type departmentRepoMock struct{ mock.Mock }

func (m *departmentRepoMock) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*domain.Department); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

type bookingRepoMock struct{ mock.Mock }

func (m *bookingRepoMock) List(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]domain.Booking)
	return bookings, args.Error(1)
}

type metricsSpy struct {
	calls      int
	groupSizes []int
	invalid    int
}

func (s *metricsSpy) ObserveLayout(_ string, _ time.Duration, groupSizes []int, invalid int) {
	s.calls++
	s.groupSizes = groupSizes
	s.invalid = invalid
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		BaseCellHeight: 160,
		DefaultDays:    7,
		MaxDays:        31,
		MinZoom:        0.5,
		MaxZoom:        2.0,
		Workers:        2,
		ServiceName:    "test",
	}
}

func person(id, name string, start, end types.TimeString) domain.Resource {
	return domain.Resource{ID: id, Name: name, Availability: domain.Availability{Start: start, End: end}}
}

func booking(id, resourceID string, day time.Time, start, end types.TimeString) domain.Booking {
	return domain.Booking{
		ID:          id,
		ResourceID:  resourceID,
		ProjectName: "Project " + id,
		StartDate:   day,
		EndDate:     day,
		StartTime:   start,
		EndTime:     end,
	}
}

type fixture struct {
	personnel   *personnelRepoMock
	departments *departmentRepoMock
	bookings    *bookingRepoMock
	metrics     *metricsSpy
	uc          *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		personnel:   &personnelRepoMock{},
		departments: &departmentRepoMock{},
		bookings:    &bookingRepoMock{},
		metrics:     &metricsSpy{},
	}
	f.uc = NewUseCase(f.personnel, f.departments, f.bookings, f.metrics, testSettings(), nopLogger{})
	f.uc.now = func() time.Time { return monday.Add(15 * time.Hour) }
	return f
}

func TestGetTimeline(t *testing.T) {
	f := newFixture()
	f.personnel.On("List", mock.Anything, (*string)(nil)).Return([]domain.Resource{
		person("r2", "Bob", "09:00", "17:00"),
		person("r1", "Ann", "09:00", "17:00"),
		person("r3", "Cid", "18:00", "10:00"),
	}, nil)
	f.bookings.On("List", mock.Anything, mock.MatchedBy(func(filter domain.BookingsFilter) bool {
		return len(filter.ResourceIDs) == 3 &&
			filter.StartDate.Equal(monday) && filter.EndDate.Equal(monday.AddDate(0, 0, 2))
	})).Return([]domain.Booking{
		booking("a", "r1", monday, "09:00", "10:00"),
		booking("b", "r1", monday, "09:30", "10:30"),
		booking("broken", "r1", monday, "nine", "10:00"),
		booking("c", "r2", monday.AddDate(0, 0, 1), "13:00", "14:00"),
	}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{Days: 3, Zoom: 1.5})
	require.NoError(t, err)

	assert.True(t, resp.Start.Equal(monday))
	assert.Len(t, resp.Days, 3)
	assert.InDelta(t, 240.0, resp.CellHeight, 1e-9)
	require.Len(t, resp.Rows, 3)

	// отсортировано по имени
	assert.Equal(t, "r1", resp.Rows[0].Resource.ID)
	assert.Equal(t, "r2", resp.Rows[1].Resource.ID)
	assert.Equal(t, "r3", resp.Rows[2].Resource.ID)

	ann := resp.Rows[0]
	require.NoError(t, ann.Err)
	require.Len(t, ann.Days, 3)
	require.Len(t, ann.Days[0].Entries, 3)
	assert.Equal(t, 2, ann.Days[0].Entries[0].Result.ColumnCount)
	assert.ErrorIs(t, ann.Days[0].Entries[2].Err, types.ErrInvalidTimeFormat)
	assert.Empty(t, ann.Days[1].Entries)

	assert.Len(t, resp.Rows[1].Days[1].Entries, 1)
	assert.ErrorIs(t, resp.Rows[2].Err, domain.ErrInvalidAvailabilityWindow)

	assert.Equal(t, 1, resp.Invalid)
	assert.Equal(t, 1, f.metrics.calls)
	assert.ElementsMatch(t, []int{2, 1}, f.metrics.groupSizes)
	assert.Equal(t, 1, f.metrics.invalid)
}

func TestGetTimelineDefaultsAndZoomClamp(t *testing.T) {
	f := newFixture()
	f.personnel.On("List", mock.Anything, (*string)(nil)).Return([]domain.Resource{}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{Zoom: 10})
	require.NoError(t, err)
	assert.True(t, resp.Start.Equal(monday))
	assert.Len(t, resp.Days, 7)
	assert.Equal(t, 2.0, resp.Zoom)
	assert.InDelta(t, 320.0, resp.CellHeight, 1e-9)
	assert.Empty(t, resp.Rows)
	f.bookings.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestGetTimelineInvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{Days: 32})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{Days: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{Zoom: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetTimelineDepartmentFilter(t *testing.T) {
	f := newFixture()
	depID := "d1"
	f.departments.On("GetByID", mock.Anything, depID).Return(&domain.Department{ID: depID}, nil)
	f.personnel.On("List", mock.Anything, &depID).Return([]domain.Resource{person("r1", "Ann", "09:00", "17:00")}, nil)
	f.bookings.On("List", mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{Start: monday, Days: 1, DepartmentID: depID})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Empty(t, resp.Rows[0].Days[0].Entries)
}

func TestGetTimelineUnknownDepartment(t *testing.T) {
	f := newFixture()
	f.departments.On("GetByID", mock.Anything, "nope").Return(nil, departmentRepo.ErrDepartmentNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{DepartmentID: "nope"})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestGetTimelineResourceIDs(t *testing.T) {
	f := newFixture()
	ids := []string{"r1", "r2"}
	ann := person("r1", "Ann", "09:00", "17:00")
	ann.DepartmentID = "d1"
	f.personnel.On("ListByIDs", mock.Anything, ids).Return([]domain.Resource{ann, person("r2", "Bob", "09:00", "17:00")}, nil)
	f.bookings.On("List", mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{Days: 1, ResourceIDs: ids, DepartmentID: "d1"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "r1", resp.Rows[0].Resource.ID)
}

func TestGetTimelineBookingsFailure(t *testing.T) {
	f := newFixture()
	f.personnel.On("List", mock.Anything, (*string)(nil)).Return([]domain.Resource{person("r1", "Ann", "09:00", "17:00")}, nil)
	f.bookings.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, f.metrics.calls)
}
