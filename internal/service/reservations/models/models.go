package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Request модели

// CreateReservationRequest запрос на создание бронирования
type CreateReservationRequest struct {
	VehicleID     uuid.UUID
	UserID        uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	Purpose       *string
	StartLocation *string
	EndLocation   *string
	Notes         *string
}

// UpdateReservationRequest частичное обновление бронирования.
// nil означает "не менять".
type UpdateReservationRequest struct {
	VehicleID     *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *string
	Purpose       *string
	StartLocation *string
	EndLocation   *string
	Notes         *string
}

// TouchesInterval возвращает true, если меняется автомобиль или окно бронирования
func (r *UpdateReservationRequest) TouchesInterval() bool {
	return r.VehicleID != nil || r.StartDate != nil || r.EndDate != nil
}

// Response модели

// VehicleSummary краткие данные автомобиля в составе бронирования
type VehicleSummary struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	FuelType     string `json:"fuel_type"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID                  string           `json:"id"`
	VehicleID           string           `json:"vehicle_id"`
	UserID              string           `json:"user_id"`
	StartDate           time.Time        `json:"start_date"`
	EndDate             time.Time        `json:"end_date"`
	Status              string           `json:"status"`
	Purpose             *string          `json:"purpose"`
	StartLocation       *string          `json:"start_location"`
	EndLocation         *string          `json:"end_location"`
	Notes               *string          `json:"notes"`
	EndMileage          *int             `json:"end_mileage"`
	FuelLevel           *string          `json:"fuel_level"`
	BatteryLevel        *int             `json:"battery_level"`
	HasIncident         bool             `json:"has_incident"`
	IncidentDescription *string          `json:"incident_description"`
	FuelCost            *decimal.Decimal `json:"fuel_cost"`
	ParkingCost         *decimal.Decimal `json:"parking_cost"`
	TollCost            *decimal.Decimal `json:"toll_cost"`
	ReturnedAt          *time.Time       `json:"returned_at"`
	UserNotified        bool             `json:"user_notified"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	Vehicle             *VehicleSummary  `json:"vehicle,omitempty"`
}

// UnreadCountResponse количество непрочитанных изменений статуса
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// MarkReadResponse количество отмеченных как прочитанные бронирований
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// FromDomainReservation конвертирует доменное бронирование в ответ
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                  r.ID.String(),
		VehicleID:           r.VehicleID.String(),
		UserID:              r.UserID.String(),
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Status:              string(r.Status),
		Purpose:             r.Purpose,
		StartLocation:       r.StartLocation,
		EndLocation:         r.EndLocation,
		Notes:               r.Notes,
		EndMileage:          r.EndMileage,
		FuelLevel:           r.FuelLevel,
		BatteryLevel:        r.BatteryLevel,
		HasIncident:         r.HasIncident,
		IncidentDescription: r.IncidentDescription,
		FuelCost:            r.FuelCost,
		ParkingCost:         r.ParkingCost,
		TollCost:            r.TollCost,
		ReturnedAt:          r.ReturnedAt,
		UserNotified:        r.UserNotified,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список бронирований, присоединяя
// данные автомобилей из vehicles (если есть)
func FromDomainReservationList(list []*domain.Reservation, vehicles map[uuid.UUID]*domain.Vehicle) []*ReservationResponse {
	result := make([]*ReservationResponse, 0, len(list))
	for _, r := range list {
		resp := FromDomainReservation(r)
		if v, ok := vehicles[r.VehicleID]; ok {
			resp.Vehicle = &VehicleSummary{
				ID:           v.ID.String(),
				Brand:        v.Brand,
				Model:        v.Model,
				LicensePlate: v.LicensePlate,
				FuelType:     string(v.FuelType),
			}
		}
		result = append(result, resp)
	}
	return result
}
