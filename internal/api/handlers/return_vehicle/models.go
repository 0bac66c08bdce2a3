package return_vehicle

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	returnVehicle "github.com/m04kA/SMC-FleetService/internal/usecase/return_vehicle"
)

// ReturnVehicleRequest HTTP request model
type ReturnVehicleRequest struct {
	Mileage             int              `json:"mileage"`
	FuelLevel           *string          `json:"fuel_level,omitempty"`
	BatteryLevel        *int             `json:"battery_level,omitempty"`
	HasIncident         bool             `json:"has_incident"`
	IncidentDescription *string          `json:"incident_description,omitempty"`
	FuelCost            *decimal.Decimal `json:"fuel_cost,omitempty"`
	ParkingCost         *decimal.Decimal `json:"parking_cost,omitempty"`
	TollCost            *decimal.Decimal `json:"toll_cost,omitempty"`
}

// ReturnVehicleResponse HTTP response model
type ReturnVehicleResponse struct {
	Message       string  `json:"message"`
	ReservationID string  `json:"reservation_id"`
	VehicleID     string  `json:"vehicle_id"`
	Mileage       int     `json:"mileage"`
	Notes         string  `json:"notes"`
	RepairJobID   *string `json:"repair_job_id,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReturnVehicleRequest) ToUseCaseRequest(reservationID uuid.UUID) *returnVehicle.Request {
	return &returnVehicle.Request{
		ReservationID:       reservationID,
		Mileage:             r.Mileage,
		FuelLevel:           r.FuelLevel,
		BatteryLevel:        r.BatteryLevel,
		HasIncident:         r.HasIncident,
		IncidentDescription: r.IncidentDescription,
		FuelCost:            r.FuelCost,
		ParkingCost:         r.ParkingCost,
		TollCost:            r.TollCost,
	}
}

// NewReturnVehicleResponse конвертирует результат use case в HTTP ответ
func NewReturnVehicleResponse(message string, res *returnVehicle.Response) *ReturnVehicleResponse {
	resp := &ReturnVehicleResponse{
		Message:       message,
		ReservationID: res.ReservationID.String(),
		VehicleID:     res.VehicleID.String(),
		Mileage:       res.Mileage,
		Notes:         res.Notes,
	}
	if res.RepairJobID != nil {
		id := res.RepairJobID.String()
		resp.RepairJobID = &id
	}
	return resp
}
