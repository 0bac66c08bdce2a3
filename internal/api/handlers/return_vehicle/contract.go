package return_vehicle

import (
	"context"

	returnVehicle "github.com/m04kA/SMC-FleetService/internal/usecase/return_vehicle"
)

type ReturnVehicleUseCase interface {
	Execute(ctx context.Context, req *returnVehicle.Request) (*returnVehicle.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
