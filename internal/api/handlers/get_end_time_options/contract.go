package get_end_time_options

import (
	"context"

	getEndTimeOptions "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/get_end_time_options"
)

type GetEndTimeOptionsUseCase interface {
	Execute(ctx context.Context, req *getEndTimeOptions.Request) (*getEndTimeOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
