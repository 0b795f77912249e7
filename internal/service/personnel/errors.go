package personnel

import "errors"

var (
	// ErrPersonNotFound возвращается, когда сотрудник не найден
	ErrPersonNotFound = errors.New("personnel: person not found")

	// ErrDepartmentNotFound возвращается, когда указанный отдел не существует
	ErrDepartmentNotFound = errors.New("personnel: department not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("personnel: invalid input data")

	// ErrInvalidAvailability возвращается при некорректном окне доступности
	ErrInvalidAvailability = errors.New("personnel: invalid availability window")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("personnel: email already registered")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("personnel: internal error")
)
