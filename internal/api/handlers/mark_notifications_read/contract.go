package mark_notifications_read

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/reservations/models"
)

type ReservationService interface {
	MarkRead(ctx context.Context, userID uuid.UUID) (*models.MarkReadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
