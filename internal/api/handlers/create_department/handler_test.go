package create_department

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments/models"
)

type serviceStub struct{ err error }

func (s serviceStub) Create(_ context.Context, req *models.CreateDepartmentRequest) (*models.DepartmentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DepartmentResponse{ID: "d1", Name: req.Name, Abbreviation: "DES", Color: "#818cf8"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(stub serviceStub, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(stub, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/departments", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	rec := post(serviceStub{}, `{"name":"Design"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"abbreviation":"DES"`)

	assert.Equal(t, http.StatusBadRequest, post(serviceStub{err: departments.ErrInvalidInput}, `{"name":"","color":"red"}`).Code)
	assert.Equal(t, http.StatusConflict, post(serviceStub{err: departments.ErrNameTaken}, `{"name":"Design"}`).Code)
}
