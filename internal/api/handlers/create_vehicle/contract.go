package create_vehicle

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/vehicles/models"
	createVehicle "github.com/m04kA/SMC-FleetService/internal/usecase/create_vehicle"
)

type CreateVehicleUseCase interface {
	Execute(ctx context.Context, req *createVehicle.Request) (*models.VehicleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
