package get_me

import (
	"context"

	personnelModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

type AuthService interface {
	Me(ctx context.Context, userID string) (*personnelModels.PersonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
