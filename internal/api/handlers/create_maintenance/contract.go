package create_maintenance

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

type MaintenanceService interface {
	Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.MaintenanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
