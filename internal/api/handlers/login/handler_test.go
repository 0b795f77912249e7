package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/auth"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/auth/models"
)

type serviceStub struct{ err error }

func (s serviceStub) Login(_ context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.TokenResponse{Token: "t0k3n", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(stub serviceStub, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(stub, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	rec := post(serviceStub{}, `{"email":"ann@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"t0k3n"`)

	assert.Equal(t, http.StatusUnauthorized, post(serviceStub{err: auth.ErrInvalidCredentials}, `{"email":"a@b.c","password":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(serviceStub{}, `{"login":"ann"}`).Code)
}
