package catalog

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("catalog.repository: court not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
