package get_timeline

import (
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
)

// Settings параметры сетки доски из конфигурации
type Settings struct {
	BaseCellHeight float64
	DefaultDays    int
	MaxDays        int
	MinZoom        float64
	MaxZoom        float64
	Workers        int
	ServiceName    string
}

// Request модель запроса доски
type Request struct {
	Start        time.Time // нулевое значение = сегодня
	Days         int       // 0 = значение по умолчанию
	Zoom         float64   // 0 = 1.0
	DepartmentID string
	ResourceIDs  []string
}

// Row строка доски: один сотрудник на все дни периода
type Row struct {
	Resource domain.Resource
	Err      error // ошибка всей строки (битое окно доступности)
	Days     []domain.DayLayout
}

// Response модель ответа
type Response struct {
	Start      time.Time
	Days       []time.Time
	Zoom       float64
	CellHeight float64
	Rows       []Row
	Invalid    int // количество бронирований, которые не удалось разложить
}
