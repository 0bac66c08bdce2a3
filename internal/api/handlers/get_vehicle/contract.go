package get_vehicle

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/vehicles/models"
)

type VehicleService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
