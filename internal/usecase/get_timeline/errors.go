package get_timeline

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах доски
	ErrInvalidInput = errors.New("get_timeline: invalid input data")

	// ErrDepartmentNotFound возвращается, когда фильтр ссылается на несуществующий отдел
	ErrDepartmentNotFound = errors.New("get_timeline: department not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_timeline: internal error")
)
