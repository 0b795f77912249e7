package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeRange возвращается, когда бронирование заканчивается раньше, чем начинается
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrResourceNotFound возвращается, когда сотрудник не найден
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("create_booking: department not found")

	// ErrOutsideAvailability возвращается, когда время не попадает в окно доступности сотрудника
	ErrOutsideAvailability = errors.New("create_booking: booking is outside resource availability")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
