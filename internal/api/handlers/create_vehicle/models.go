package create_vehicle

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	createVehicle "github.com/m04kA/SMC-FleetService/internal/usecase/create_vehicle"
)

// CreateVehicleRequest HTTP request model
type CreateVehicleRequest struct {
	Brand                   string     `json:"brand"`
	Model                   string     `json:"model"`
	Year                    int        `json:"year"`
	LicensePlate            string     `json:"license_plate"`
	VIN                     *string    `json:"vin,omitempty"`
	Color                   *string    `json:"color,omitempty"`
	FuelType                string     `json:"fuel_type"`
	Mileage                 int        `json:"mileage"`
	Status                  *string    `json:"status,omitempty"`
	AssignedUserID          *uuid.UUID `json:"assigned_user_id,omitempty"`
	InsuranceProvider       *string    `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber   *string    `json:"insurance_policy_number,omitempty"`
	InsuranceExpiryDate     *string    `json:"insurance_expiry_date,omitempty"`     // "2025-10-15"
	LastTechnicalInspection *string    `json:"last_technical_inspection,omitempty"` // "2025-10-15"
	Notes                   *string    `json:"notes,omitempty"`
	MaintenanceUpToDate     bool       `json:"maintenance_up_to_date"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateVehicleRequest) ToUseCaseRequest() (*createVehicle.Request, error) {
	insuranceExpiry, err := handlers.ParseOptionalDateTime(r.InsuranceExpiryDate)
	if err != nil {
		return nil, err
	}
	inspection, err := handlers.ParseOptionalDateTime(r.LastTechnicalInspection)
	if err != nil {
		return nil, err
	}

	return &createVehicle.Request{
		Brand:                   r.Brand,
		Model:                   r.Model,
		Year:                    r.Year,
		LicensePlate:            r.LicensePlate,
		VIN:                     r.VIN,
		Color:                   r.Color,
		FuelType:                r.FuelType,
		Mileage:                 r.Mileage,
		Status:                  r.Status,
		AssignedUserID:          r.AssignedUserID,
		InsuranceProvider:       r.InsuranceProvider,
		InsurancePolicyNumber:   r.InsurancePolicyNumber,
		InsuranceExpiryDate:     insuranceExpiry,
		LastTechnicalInspection: inspection,
		Notes:                   r.Notes,
		MaintenanceUpToDate:     r.MaintenanceUpToDate,
	}, nil
}
