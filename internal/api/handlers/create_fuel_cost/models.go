package create_fuel_cost

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts/models"
)

// CreateFuelCostRequest HTTP request model
type CreateFuelCostRequest struct {
	VehicleID uuid.UUID       `json:"vehicle_id"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	Date      string          `json:"date"` // "2025-10-15"
	Liters    decimal.Decimal `json:"liters"`
	Amount    decimal.Decimal `json:"amount"`
	Mileage   *int            `json:"mileage,omitempty"`
	Station   *string         `json:"station,omitempty"`
	Notes     *string         `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateFuelCostRequest) ToServiceRequest() (*models.CreateFuelCostRequest, error) {
	date, err := handlers.ParseDateTime(r.Date)
	if err != nil {
		return nil, err
	}
	return &models.CreateFuelCostRequest{
		VehicleID: r.VehicleID,
		UserID:    r.UserID,
		Date:      date,
		Liters:    r.Liters,
		Amount:    r.Amount,
		Mileage:   r.Mileage,
		Station:   r.Station,
		Notes:     r.Notes,
	}, nil
}
