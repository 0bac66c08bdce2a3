package fuelcosts

import "errors"

var (
	// ErrFuelCostNotFound возвращается, когда запись о заправке не найдена
	ErrFuelCostNotFound = errors.New("fuelcosts: fuel cost not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("fuelcosts: vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("fuelcosts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("fuelcosts: internal error")
)
