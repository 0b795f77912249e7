package get_me

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/middleware"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/auth"
	personnelModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

type serviceStub struct{ err error }

func (s serviceStub) Me(_ context.Context, userID string) (*personnelModels.PersonResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &personnelModels.PersonResponse{ID: userID, Name: "Ann"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "u1"))

	rec := httptest.NewRecorder()
	NewHandler(serviceStub{}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"u1"`)

	rec = httptest.NewRecorder()
	NewHandler(serviceStub{err: auth.ErrUserNotFound}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(serviceStub{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
