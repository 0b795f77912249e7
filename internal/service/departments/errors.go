package departments

import "errors"

var (
	// ErrDepartmentNotFound возвращается, когда отдел не найден
	ErrDepartmentNotFound = errors.New("departments: department not found")

	// ErrNameTaken возвращается, когда отдел с таким названием уже есть
	ErrNameTaken = errors.New("departments: department name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("departments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("departments: internal error")
)
