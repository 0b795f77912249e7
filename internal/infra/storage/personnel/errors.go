package personnel

import "errors"

var (
	// ErrPersonNotFound возвращается, когда сотрудник не найден
	ErrPersonNotFound = errors.New("personnel.repository: person not found")

	// ErrEmailTaken возвращается при нарушении уникальности email
	ErrEmailTaken = errors.New("personnel.repository: email already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("personnel.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("personnel.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("personnel.repository: failed to scan row")
)
