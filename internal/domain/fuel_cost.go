package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FuelCost fuel ledger entry
type FuelCost struct {
	ID        uuid.UUID
	VehicleID uuid.UUID
	UserID    *uuid.UUID
	Date      time.Time
	Liters    decimal.Decimal
	Amount    decimal.Decimal
	Mileage   *int
	Station   *string
	Notes     *string
	CreatedAt time.Time
}
