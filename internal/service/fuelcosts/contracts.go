package fuelcosts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// FuelCostRepository интерфейс журнала заправок
type FuelCostRepository interface {
	Create(ctx context.Context, fc *domain.FuelCost) (*domain.FuelCost, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*domain.FuelCost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
