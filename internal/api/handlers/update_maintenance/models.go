package update_maintenance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

// UpdateMaintenanceRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateMaintenanceRequest struct {
	VehicleID        *uuid.UUID       `json:"vehicle_id,omitempty"`
	RuleID           *uuid.UUID       `json:"rule_id,omitempty"`
	Type             *string          `json:"type,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Status           *string          `json:"status,omitempty"`
	ScheduledDate    *string          `json:"scheduled_date,omitempty"`
	CompletedDate    *string          `json:"completed_date,omitempty"`
	MileageAtService *int             `json:"mileage_at_service,omitempty"`
	Cost             *decimal.Decimal `json:"cost,omitempty"`
	Provider         *string          `json:"provider,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateMaintenanceRequest) ToServiceRequest() (*models.UpdateMaintenanceRequest, error) {
	scheduled, err := handlers.ParseOptionalDateTime(r.ScheduledDate)
	if err != nil {
		return nil, err
	}
	completed, err := handlers.ParseOptionalDateTime(r.CompletedDate)
	if err != nil {
		return nil, err
	}

	return &models.UpdateMaintenanceRequest{
		VehicleID:        r.VehicleID,
		RuleID:           r.RuleID,
		Type:             r.Type,
		Description:      r.Description,
		Status:           r.Status,
		ScheduledDate:    scheduled,
		CompletedDate:    completed,
		MileageAtService: r.MileageAtService,
		Cost:             r.Cost,
		Provider:         r.Provider,
		Notes:            r.Notes,
	}, nil
}
