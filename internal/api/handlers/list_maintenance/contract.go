package list_maintenance

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

type MaintenanceService interface {
	List(ctx context.Context) ([]*models.MaintenanceResponse, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.MaintenanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
