package get_unread_count

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/reservations/models"
)

type ReservationService interface {
	UnreadCount(ctx context.Context, userID uuid.UUID) (*models.UnreadCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
