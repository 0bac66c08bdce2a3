package create_fuel_cost

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts/models"
)

type FuelCostService interface {
	Create(ctx context.Context, req *models.CreateFuelCostRequest) (*models.FuelCostResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
