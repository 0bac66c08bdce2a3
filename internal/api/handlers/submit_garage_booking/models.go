package submit_garage_booking

import (
	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/garagebooking/models"
)

// SubmitGarageBookingRequest HTTP request model
type SubmitGarageBookingRequest struct {
	ScheduledDate *string `json:"scheduled_date"`
	Description   *string `json:"description,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// Отсутствующая дата передается как nil и отклоняется сервисом.
func (r *SubmitGarageBookingRequest) ToServiceRequest() (*models.SubmitRequest, error) {
	date, err := handlers.ParseOptionalDateTime(r.ScheduledDate)
	if err != nil {
		return nil, err
	}
	return &models.SubmitRequest{
		ScheduledDate: date,
		Description:   r.Description,
		Notes:         r.Notes,
	}, nil
}
