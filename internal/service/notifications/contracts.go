package notifications

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// AlertSource текущие алерты, отсортированные по приоритету
type AlertSource interface {
	Current(ctx context.Context) ([]domain.Alert, error)
}

// Mailer транспорт отправки писем
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, to, subject, html string) error
}

// TokenRepository хранилище токенов записи в автосервис
type TokenRepository interface {
	Create(ctx context.Context, t *domain.GarageBookingToken) (*domain.GarageBookingToken, error)
}

// Metrics счетчики отправленных уведомлений
type Metrics interface {
	IncNotification(channel, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
