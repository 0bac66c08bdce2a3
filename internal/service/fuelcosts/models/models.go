package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// CreateFuelCostRequest запрос на добавление заправки
type CreateFuelCostRequest struct {
	VehicleID uuid.UUID
	UserID    *uuid.UUID
	Date      time.Time
	Liters    decimal.Decimal
	Amount    decimal.Decimal
	Mileage   *int
	Station   *string
	Notes     *string
}

// FuelCostResponse запись о заправке
type FuelCostResponse struct {
	ID        string          `json:"id"`
	VehicleID string          `json:"vehicle_id"`
	UserID    *string         `json:"user_id"`
	Date      string          `json:"date"`
	Liters    decimal.Decimal `json:"liters"`
	Amount    decimal.Decimal `json:"amount"`
	Mileage   *int            `json:"mileage"`
	Station   *string         `json:"station"`
	Notes     *string         `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}

// FromDomainFuelCost конвертирует запись в ответ
func FromDomainFuelCost(fc *domain.FuelCost) *FuelCostResponse {
	resp := &FuelCostResponse{
		ID:        fc.ID.String(),
		VehicleID: fc.VehicleID.String(),
		Date:      fc.Date.Format(domain.DateFormat),
		Liters:    fc.Liters,
		Amount:    fc.Amount,
		Mileage:   fc.Mileage,
		Station:   fc.Station,
		Notes:     fc.Notes,
		CreatedAt: fc.CreatedAt,
	}
	if fc.UserID != nil {
		s := fc.UserID.String()
		resp.UserID = &s
	}
	return resp
}
