package profiles

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profiles: profile not found")

	// ErrInvalidInput возвращается при некорректных данных профиля
	ErrInvalidInput = errors.New("profiles: invalid input")

	// ErrEmailTaken возвращается, если email уже занят другим профилем
	ErrEmailTaken = errors.New("profiles: email already in use")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profiles: internal error")
)
