package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/jwt"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "недействительный токен авторизации"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Auth проверяет JWT из заголовка Authorization: Bearer <token>
type Auth struct {
	secret string
	logger Logger
}

// NewAuth создает middleware авторизации
func NewAuth(secret string, logger Logger) *Auth {
	return &Auth{secret: secret, logger: logger}
}

// Middleware кладет ID пользователя из токена в контекст запроса
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			a.logger.Warn("Auth: %s %s - missing bearer token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := jwt.Parse(token, a.secret)
		if err != nil {
			a.logger.Warn("Auth: %s %s - invalid token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
	})
}

// WithUserID возвращает контекст с ID пользователя
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
