package create_reservation

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/reservations/models"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	VehicleID     uuid.UUID `json:"vehicle_id"`
	UserID        uuid.UUID `json:"user_id"`
	StartDate     string    `json:"start_date"` // RFC3339 или "2024-06-01T13:00"
	EndDate       string    `json:"end_date"`
	Purpose       *string   `json:"purpose,omitempty"`
	StartLocation *string   `json:"start_location,omitempty"`
	EndLocation   *string   `json:"end_location,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateReservationRequest) ToServiceRequest() (*models.CreateReservationRequest, error) {
	start, err := handlers.ParseDateTime(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseDateTime(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateReservationRequest{
		VehicleID:     r.VehicleID,
		UserID:        r.UserID,
		StartDate:     start,
		EndDate:       end,
		Purpose:       r.Purpose,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Notes:         r.Notes,
	}, nil
}
