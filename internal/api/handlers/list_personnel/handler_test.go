package list_personnel

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

type serviceStub struct {
	err          error
	departmentID *string
}

func (s *serviceStub) List(_ context.Context, departmentID *string) (*models.PersonListResponse, error) {
	s.departmentID = departmentID
	if s.err != nil {
		return nil, s.err
	}
	return &models.PersonListResponse{Personnel: []models.PersonResponse{{ID: "p1"}, {ID: "p2"}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &serviceStub{}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/personnel?departmentId=d1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"p2"`)
	require.NotNil(t, svc.departmentID)
	assert.Equal(t, "d1", *svc.departmentID)

	svc = &serviceStub{}
	rec = httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/personnel", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.departmentID)

	rec = httptest.NewRecorder()
	NewHandler(&serviceStub{err: errors.New("boom")}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/personnel", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
