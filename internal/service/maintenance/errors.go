package maintenance

import "errors"

var (
	// ErrMaintenanceNotFound возвращается, когда работа не найдена
	ErrMaintenanceNotFound = errors.New("maintenance: maintenance job not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("maintenance: vehicle not found")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("maintenance: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("maintenance: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("maintenance: internal error")
)
