package alerts

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("alerts: vehicle not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("alerts: internal error")
)
