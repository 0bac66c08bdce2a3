package bookingtoken

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен записи не найден
	ErrTokenNotFound = errors.New("bookingtoken.repository: token not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookingtoken.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookingtoken.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookingtoken.repository: failed to scan row")
)
