package get_end_time_options

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_end_time_options: invalid input data")

	// ErrResourceNotFound возвращается, когда сотрудник не найден
	ErrResourceNotFound = errors.New("get_end_time_options: resource not found")

	// ErrInvalidAvailability возвращается, когда окно доступности сотрудника повреждено
	ErrInvalidAvailability = errors.New("get_end_time_options: resource availability is invalid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_end_time_options: internal error")
)
