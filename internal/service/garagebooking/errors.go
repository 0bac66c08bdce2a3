package garagebooking

import "errors"

var (
	// ErrTokenNotFound возвращается для неизвестного токена
	ErrTokenNotFound = errors.New("garagebooking: token not found")

	// ErrTokenExpired возвращается, когда срок действия токена истёк
	ErrTokenExpired = errors.New("garagebooking: token expired")

	// ErrTokenUsed возвращается при повторной записи по одноразовому токену
	ErrTokenUsed = errors.New("garagebooking: token already used")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("garagebooking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("garagebooking: internal error")
)
