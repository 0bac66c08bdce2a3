package list_alerts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/alerts/models"
)

type AlertService interface {
	All(ctx context.Context) (*models.AlertListResponse, error)
	ForVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.AlertListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
