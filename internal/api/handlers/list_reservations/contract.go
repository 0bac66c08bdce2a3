package list_reservations

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/reservations/models"
)

type ReservationService interface {
	List(ctx context.Context) ([]*models.ReservationResponse, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.ReservationResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
