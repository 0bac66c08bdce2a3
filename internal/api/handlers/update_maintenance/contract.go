package update_maintenance

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

type MaintenanceService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateMaintenanceRequest) (*models.MaintenanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
