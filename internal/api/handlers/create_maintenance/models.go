package create_maintenance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

// CreateMaintenanceRequest HTTP request model
type CreateMaintenanceRequest struct {
	VehicleID        uuid.UUID        `json:"vehicle_id"`
	RuleID           *uuid.UUID       `json:"rule_id,omitempty"`
	Type             string           `json:"type"`
	Description      string           `json:"description"`
	Status           *string          `json:"status,omitempty"`
	ScheduledDate    string           `json:"scheduled_date"` // "2025-10-15" или RFC3339
	CompletedDate    *string          `json:"completed_date,omitempty"`
	MileageAtService *int             `json:"mileage_at_service,omitempty"`
	Cost             *decimal.Decimal `json:"cost,omitempty"`
	Provider         *string          `json:"provider,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateMaintenanceRequest) ToServiceRequest() (*models.CreateMaintenanceRequest, error) {
	scheduled, err := handlers.ParseDateTime(r.ScheduledDate)
	if err != nil {
		return nil, err
	}
	completed, err := handlers.ParseOptionalDateTime(r.CompletedDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateMaintenanceRequest{
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
