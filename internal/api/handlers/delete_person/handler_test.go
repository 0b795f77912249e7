package delete_person

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel"
)

type serviceStub struct {
	err     error
	deleted string
}

func (s *serviceStub) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", err: fmt.Errorf("%w: id=p1", personnel.ErrPersonNotFound), wantStatus: http.StatusNotFound},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &serviceStub{err: tt.err}
			router := mux.NewRouter()
			router.HandleFunc("/api/v1/personnel/{personId}", NewHandler(svc, nopLogger{}).Handle)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/personnel/p1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err == nil {
				assert.Equal(t, "p1", svc.deleted)
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
