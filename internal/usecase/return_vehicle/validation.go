package return_vehicle

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

const maxFuelLevelLength = 32

func validateRequest(req *Request) error {
	if req.ReservationID == uuid.Nil {
		return fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}
	if req.Mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", ErrInvalidInput)
	}
	if req.BatteryLevel != nil && (*req.BatteryLevel < 0 || *req.BatteryLevel > 100) {
		return fmt.Errorf("%w: battery level must be within 0..100", ErrInvalidInput)
	}
	if req.FuelLevel != nil && len(*req.FuelLevel) > maxFuelLevelLength {
		return fmt.Errorf("%w: fuel level is too long", ErrInvalidInput)
	}
	if req.IncidentDescription != nil && len(*req.IncidentDescription) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: incident description is too long", ErrInvalidInput)
	}
	for name, cost := range map[string]*decimal.Decimal{
		"fuel_cost":    req.FuelCost,
		"parking_cost": req.ParkingCost,
		"toll_cost":    req.TollCost,
	} {
		if cost != nil && cost.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
		}
	}
	return nil
}
