package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("vehicles: vehicle not found")

	// ErrMileageDecrease возвращается при попытке уменьшить пробег
	ErrMileageDecrease = errors.New("vehicles: mileage cannot decrease")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("vehicles: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles: internal error")
)
