package list_fuel_costs

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts/models"
)

type FuelCostService interface {
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.FuelCostResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
