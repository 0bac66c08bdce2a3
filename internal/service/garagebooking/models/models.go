package models

import (
	"time"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	maintenanceModels "github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

// SubmitRequest запись автосервиса на обслуживание
type SubmitRequest struct {
	ScheduledDate *time.Time
	Description   *string
	Notes         *string
}

// VehicleInfo данные автомобиля на странице записи
type VehicleInfo struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
	Year         int    `json:"year"`
	FuelType     string `json:"fuel_type"`
	Mileage      int    `json:"mileage"`
}

// BusyReservation занятый бронированием интервал
type BusyReservation struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

// BusyMaintenance запланированная работа
type BusyMaintenance struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

// BookingPageResponse данные страницы записи по токену
type BookingPageResponse struct {
	Vehicle       VehicleInfo       `json:"vehicle"`
	AlertRuleName string            `json:"alert_rule_name"`
	ExpiresAt     time.Time         `json:"expires_at"`
	Used          bool              `json:"used"`
	Reservations  []BusyReservation `json:"reservations"`
	Maintenance   []BusyMaintenance `json:"maintenance"`
}

// SubmitResponse результат записи
type SubmitResponse struct {
	Message     string                                 `json:"message"`
	Maintenance *maintenanceModels.MaintenanceResponse `json:"maintenance"`
}

// NewBookingPage собирает ответ страницы записи
func NewBookingPage(
	token *domain.GarageBookingToken,
	v *domain.Vehicle,
	reservations []*domain.Reservation,
	jobs []*domain.MaintenanceJob,
) *BookingPageResponse {
	page := &BookingPageResponse{
		Vehicle: VehicleInfo{
			ID:           v.ID.String(),
			Brand:        v.Brand,
			Model:        v.Model,
			LicensePlate: v.LicensePlate,
			Year:         v.Year,
			FuelType:     string(v.FuelType),
			Mileage:      v.Mileage,
		},
		AlertRuleName: token.AlertRuleName,
		ExpiresAt:     token.ExpiresAt,
		Used:          token.Used,
		Reservations:  make([]BusyReservation, 0, len(reservations)),
		Maintenance:   make([]BusyMaintenance, 0, len(jobs)),
	}
	for _, r := range reservations {
		page.Reservations = append(page.Reservations, BusyReservation{
			ID:        r.ID.String(),
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Status:    string(r.Status),
		})
	}
	for _, j := range jobs {
		page.Maintenance = append(page.Maintenance, BusyMaintenance{
			ID:            j.ID.String(),
			Type:          string(j.Type),
			Description:   j.Description,
			Status:        string(j.Status),
			ScheduledDate: j.ScheduledDate,
		})
	}
	return page
}
