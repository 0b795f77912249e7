package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResourcePlanner/pkg/jwt"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func protected() (http.Handler, *string) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return NewAuth(testSecret, nopLogger{}).Middleware(next), &seen
}

func TestAuthAcceptsValidToken(t *testing.T) {
	token, _, err := jwt.GenerateToken("user-1", "ann@example.com", testSecret, time.Hour)
	require.NoError(t, err)

	h, seen := protected()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/timeline", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", *seen)
}

func TestAuthRejects(t *testing.T) {
	foreign, _, err := jwt.GenerateToken("user-1", "ann@example.com", "other-secret", time.Hour)
	require.NoError(t, err)
	expired, _, err := jwt.GenerateToken("user-1", "ann@example.com", testSecret, -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
		{"garbage", "Bearer abc.def.ghi"},
		{"wrong secret", "Bearer " + foreign},
		{"expired", "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, seen := protected()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, *seen)
		})
	}
}

func TestGetUserID(t *testing.T) {
	_, ok := GetUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)

	id, ok := GetUserID(WithUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "u1"))
	assert.True(t, ok)
	assert.Equal(t, "u1", id)
}
