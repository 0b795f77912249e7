package list_bookings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/bookings"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/bookings/models"
)

type serviceStub struct {
	got *models.ListBookingsRequest
	err error
}

func (s *serviceStub) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	stub := &serviceStub{}
	rec := httptest.NewRecorder()
	NewHandler(stub, nopLogger{}).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/bookings?resourceId=r1&from=2025-03-10&to=2025-03-16", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stub.got.ResourceID)
	assert.Equal(t, "r1", *stub.got.ResourceID)
	assert.Equal(t, "2025-03-16", stub.got.EndDate.Format("2006-01-02"))
	assert.JSONEq(t, `{"bookings":[]}`, rec.Body.String())
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"bad from", "/api/v1/bookings?from=yesterday", nil, http.StatusBadRequest},
		{"inverted range", "/api/v1/bookings", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"internal", "/api/v1/bookings", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&serviceStub{err: tt.err}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
