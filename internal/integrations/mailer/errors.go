package mailer

import "errors"

var (
	// ErrNotConfigured возвращается, если адрес сервиса отправки не задан
	ErrNotConfigured = errors.New("mailer client: transport url is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailer client: internal error")

	// ErrInvalidResponse возвращается при неуспешном ответе сервиса отправки
	ErrInvalidResponse = errors.New("mailer client: invalid response")
)
