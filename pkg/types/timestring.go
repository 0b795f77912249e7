package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// MinutesPerHour количество минут в часе
	MinutesPerHour = 60
	// MinutesPerDay длина сетки дня в минутах (00:00 - 24:00)
	MinutesPerDay = 24 * MinutesPerHour

	// EndOfDay специальное значение конца дня, допустимое только как граница слайса
	EndOfDay TimeString = "24:00"

	// NotAvailable значение для отображения отсутствующего или битого времени
	NotAvailable = "N/A"
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не является временем HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrInvalidInterval возвращается при неположительном шаге генерации слотов
	ErrInvalidInterval = errors.New("invalid slot interval")
)

// TimeString время суток в формате "HH:MM"
type TimeString string

// NewTimeString создает TimeString из time.Time (часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит и нормализует строку времени
// "9:5" -> "09:05"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := ParseTime(s)
	if err != nil {
		return "", err
	}
	return TimeString(FormatTime(float64(minutes))), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeFormat, minutes)
	}
	return TimeString(FormatTime(float64(minutes))), nil
}

// ParseTime переводит строку "HH:MM" в минуты с полуночи.
// Поля могут быть без ведущего нуля ("9:00"). "24:00" допустимо как конец дня.
func ParseTime(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, ok := parseField(parts[0])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minutes, ok := parseField(parts[1])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	if hours == 24 && minutes == 0 {
		return MinutesPerDay, nil
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidTimeFormat, s)
	}

	return hours*MinutesPerHour + minutes, nil
}

// parseField разбирает одно поле из 1-2 цифр
func parseField(field string) (int, bool) {
	if len(field) == 0 || len(field) > 2 {
		return 0, false
	}
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatTime форматирует минуты с полуночи в "HH:MM".
// Для NaN, бесконечности и отрицательных значений возвращает "N/A".
func FormatTime(minutes float64) string {
	if math.IsNaN(minutes) || math.IsInf(minutes, 0) || minutes < 0 {
		return NotAvailable
	}
	total := int64(minutes)
	return fmt.Sprintf("%02d:%02d", total/MinutesPerHour, total%MinutesPerHour)
}

// FormatTimeString нормализует строку времени для отображения.
// Пустая или нераспознанная строка отображается как "N/A".
func FormatTimeString(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	minutes, err := ParseTime(s)
	if err != nil {
		return NotAvailable
	}
	return FormatTime(float64(minutes))
}

// DurationMinutes возвращает длительность между началом и концом в минутах.
// Переход через полночь не обрабатывается: результат может быть отрицательным.
func DurationMinutes(startTime, endTime string) (int, error) {
	start, err := ParseTime(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseTime(endTime)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// GenerateTimeSlots генерирует слоты в полуинтервале [startTime, endTime) с шагом intervalMinutes
func GenerateTimeSlots(startTime, endTime string, intervalMinutes int) ([]TimeString, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, intervalMinutes)
	}

	start, err := ParseTime(startTime)
	if err != nil {
		return nil, err
	}
	end, err := ParseTime(endTime)
	if err != nil {
		return nil, err
	}

	slots := make([]TimeString, 0)
	for current := start; current < end; current += intervalMinutes {
		slots = append(slots, TimeString(FormatTime(float64(current))))
	}

	return slots, nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	return ParseTime(string(t))
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := ParseTime(string(t))
	return err
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут.
// Выход за пределы суток считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other.
// Некорректные значения не сравниваются.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	return errA == nil && errB == nil && a > b
}

// Scan реализует sql.Scanner для колонок TIME ("09:00:00") и TEXT
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeFormat, src)
	}

	// Postgres отдает TIME как HH:MM:SS
	if parts := strings.Split(raw, ":"); len(parts) == 3 {
		raw = parts[0] + ":" + parts[1]
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
