package notify_alerts

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/notifications/models"
)

type Notifier interface {
	NotifyNow(ctx context.Context) (*models.NotifyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
