package update_vehicle

import (
	"github.com/m04kA/SMC-FleetService/internal/service/vehicles/models"
)

// UpdateVehicleRequest HTTP request model.
// Пустая строка в необязательном поле очищает значение.
type UpdateVehicleRequest struct {
	Brand                   *string `json:"brand,omitempty"`
	Model                   *string `json:"model,omitempty"`
	Year                    *int    `json:"year,omitempty"`
	LicensePlate            *string `json:"license_plate,omitempty"`
	VIN                     *string `json:"vin,omitempty"`
	Color                   *string `json:"color,omitempty"`
	FuelType                *string `json:"fuel_type,omitempty"`
	Mileage                 *int    `json:"mileage,omitempty"`
	Status                  *string `json:"status,omitempty"`
	InsuranceProvider       *string `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber   *string `json:"insurance_policy_number,omitempty"`
	InsuranceExpiryDate     *string `json:"insurance_expiry_date,omitempty"`
	LastTechnicalInspection *string `json:"last_technical_inspection,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVehicleRequest) ToServiceRequest() *models.UpdateVehicleRequest {
	return &models.UpdateVehicleRequest{
		Brand:                   r.Brand,
		Model:                   r.Model,
		Year:                    r.Year,
		LicensePlate:            r.LicensePlate,
		VIN:                     r.VIN,
		Color:                   r.Color,
		FuelType:                r.FuelType,
		Mileage:                 r.Mileage,
		Status:                  r.Status,
		InsuranceProvider:       r.InsuranceProvider,
		InsurancePolicyNumber:   r.InsurancePolicyNumber,
		InsuranceExpiryDate:     r.InsuranceExpiryDate,
		LastTechnicalInspection: r.LastTechnicalInspection,
		Notes:                   r.Notes,
	}
}
