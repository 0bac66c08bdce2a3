package notifications

import "errors"

var (
	// ErrNoRecipients возвращается, если не настроен ни один получатель
	ErrNoRecipients = errors.New("notifications: no recipients configured")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
