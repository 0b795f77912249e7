package get_end_time_options

import (
	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// Request модель запроса вариантов времени
type Request struct {
	ResourceID string
	StartTime  types.TimeString // пустое значение = вернуть варианты начала
}

// Response модель ответа
type Response struct {
	ResourceID   string
	Availability domain.Availability
	StartTime    types.TimeString
	StartOptions []types.TimeString // слоты внутри окна доступности (только без StartTime)
	EndOptions   []types.TimeString // слоты после StartTime до конца окна
}
