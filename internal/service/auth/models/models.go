package models

import (
	"time"

	personnelModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse выданный токен и пользователь
type TokenResponse struct {
	Token     string                         `json:"token"`
	ExpiresAt time.Time                      `json:"expiresAt"`
	User      personnelModels.PersonResponse `json:"user"`
}
