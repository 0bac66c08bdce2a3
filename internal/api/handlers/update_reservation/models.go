package update_reservation

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/reservations/models"
)

// UpdateReservationRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateReservationRequest struct {
	VehicleID     *uuid.UUID `json:"vehicle_id,omitempty"`
	StartDate     *string    `json:"start_date,omitempty"`
	EndDate       *string    `json:"end_date,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Purpose       *string    `json:"purpose,omitempty"`
	StartLocation *string    `json:"start_location,omitempty"`
	EndLocation   *string    `json:"end_location,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateReservationRequest) ToServiceRequest() (*models.UpdateReservationRequest, error) {
	start, err := handlers.ParseOptionalDateTime(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseOptionalDateTime(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.UpdateReservationRequest{
		VehicleID:     r.VehicleID,
		StartDate:     start,
		EndDate:       end,
		Status:        r.Status,
		Purpose:       r.Purpose,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Notes:         r.Notes,
	}, nil
}
