package return_vehicle

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("return_vehicle: reservation not found")

	// ErrVehicleNotFound возвращается, когда автомобиль бронирования не найден
	ErrVehicleNotFound = errors.New("return_vehicle: vehicle not found")

	// ErrInvalidTransition возвращается, когда бронирование нельзя завершить из текущего статуса
	ErrInvalidTransition = errors.New("return_vehicle: reservation cannot be returned in its current status")

	// ErrReturnTooEarly возвращается при попытке вернуть автомобиль до окончания бронирования
	ErrReturnTooEarly = errors.New("return_vehicle: reservation has not ended yet")

	// ErrMileageDecrease возвращается, когда итоговый пробег меньше текущего пробега автомобиля
	ErrMileageDecrease = errors.New("return_vehicle: mileage cannot decrease")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("return_vehicle: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("return_vehicle: internal error")
)
