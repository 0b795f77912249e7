package update_availability

import (
	"context"

	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

type PersonnelService interface {
	UpdateAvailability(ctx context.Context, id string, req *models.UpdateAvailabilityRequest) (*models.PersonResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
