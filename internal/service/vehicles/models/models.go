package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// UpdateVehicleRequest частичное обновление автомобиля.
// Для необязательных строковых полей и дат пустая строка означает NULL.
// Даты передаются в формате YYYY-MM-DD.
type UpdateVehicleRequest struct {
	Brand                   *string
	Model                   *string
	Year                    *int
	LicensePlate            *string
	VIN                     *string
	Color                   *string
	FuelType                *string
	Mileage                 *int
	Status                  *string
	InsuranceProvider       *string
	InsurancePolicyNumber   *string
	InsuranceExpiryDate     *string
	LastTechnicalInspection *string
	Notes                   *string
}

// VehicleResponse ответ с данными автомобиля
type VehicleResponse struct {
	ID                      string    `json:"id"`
	Brand                   string    `json:"brand"`
	Model                   string    `json:"model"`
	Year                    int       `json:"year"`
	LicensePlate            string    `json:"license_plate"`
	VIN                     *string   `json:"vin"`
	Color                   *string   `json:"color"`
	FuelType                string    `json:"fuel_type"`
	Mileage                 int       `json:"mileage"`
	Status                  string    `json:"status"`
	DisplayStatus           string    `json:"display_status"`
	AssignedUserID          *string   `json:"assigned_user_id"`
	InsuranceProvider       *string   `json:"insurance_provider"`
	InsurancePolicyNumber   *string   `json:"insurance_policy_number"`
	InsuranceExpiryDate     *string   `json:"insurance_expiry_date"`
	LastTechnicalInspection *string   `json:"last_technical_inspection"`
	Notes                   *string   `json:"notes"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// FromDomainVehicle конвертирует доменный автомобиль в ответ
func FromDomainVehicle(v *domain.Vehicle, reservedNow bool) *VehicleResponse {
	return &VehicleResponse{
		ID:                      v.ID.String(),
		Brand:                   v.Brand,
		Model:                   v.Model,
		Year:                    v.Year,
		LicensePlate:            v.LicensePlate,
		VIN:                     v.VIN,
		Color:                   v.Color,
		FuelType:                string(v.FuelType),
		Mileage:                 v.Mileage,
		Status:                  string(v.Status),
		DisplayStatus:           string(v.DisplayStatus(reservedNow)),
		AssignedUserID:          uuidString(v.AssignedUserID),
		InsuranceProvider:       v.InsuranceProvider,
		InsurancePolicyNumber:   v.InsurancePolicyNumber,
		InsuranceExpiryDate:     dateString(v.InsuranceExpiryDate),
		LastTechnicalInspection: dateString(v.LastTechnicalInspection),
		Notes:                   v.Notes,
		CreatedAt:               v.CreatedAt,
		UpdatedAt:               v.UpdatedAt,
	}
}

// FromDomainVehicleList конвертирует список автомобилей
func FromDomainVehicleList(list []*domain.Vehicle, reserved map[uuid.UUID]bool) []*VehicleResponse {
	result := make([]*VehicleResponse, 0, len(list))
	for _, v := range list {
		result = append(result, FromDomainVehicle(v, reserved[v.ID]))
	}
	return result
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
