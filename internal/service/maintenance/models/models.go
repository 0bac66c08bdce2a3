package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// CreateMaintenanceRequest запрос на создание работы
type CreateMaintenanceRequest struct {
	VehicleID        uuid.UUID
	RuleID           *uuid.UUID
	Type             string
	Description      string
	Status           *string // по умолчанию scheduled
	ScheduledDate    time.Time
	CompletedDate    *time.Time
	MileageAtService *int
	Cost             *decimal.Decimal
	Provider         *string
	Notes            *string
}

// UpdateMaintenanceRequest частичное обновление работы
type UpdateMaintenanceRequest struct {
	VehicleID        *uuid.UUID
	RuleID           *uuid.UUID
	Type             *string
	Description      *string
	Status           *string
	ScheduledDate    *time.Time
	CompletedDate    *time.Time
	MileageAtService *int
	Cost             *decimal.Decimal
	Provider         *string
	Notes            *string
}

// VehicleSummary краткие данные автомобиля в составе работы
type VehicleSummary struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate"`
}

// MaintenanceResponse ответ с данными работы
type MaintenanceResponse struct {
	ID               string           `json:"id"`
	VehicleID        string           `json:"vehicle_id"`
	RuleID           *string          `json:"rule_id"`
	Type             string           `json:"type"`
	Description      string           `json:"description"`
	Status           string           `json:"status"`
	ScheduledDate    time.Time        `json:"scheduled_date"`
	CompletedDate    *time.Time       `json:"completed_date"`
	MileageAtService *int             `json:"mileage_at_service"`
	Cost             *decimal.Decimal `json:"cost"`
	Provider         *string          `json:"provider"`
	Notes            *string          `json:"notes"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	Vehicle          *VehicleSummary  `json:"vehicle,omitempty"`
}

// FromDomainMaintenance конвертирует доменную работу в ответ
func FromDomainMaintenance(job *domain.MaintenanceJob) *MaintenanceResponse {
	resp := &MaintenanceResponse{
		ID:               job.ID.String(),
		VehicleID:        job.VehicleID.String(),
		Type:             string(job.Type),
		Description:      job.Description,
		Status:           string(job.Status),
		ScheduledDate:    job.ScheduledDate,
		CompletedDate:    job.CompletedDate,
		MileageAtService: job.MileageAtService,
		Cost:             job.Cost,
		Provider:         job.Provider,
		Notes:            job.Notes,
		CreatedAt:        job.CreatedAt,
		UpdatedAt:        job.UpdatedAt,
	}
	if job.RuleID != nil {
		ruleID := job.RuleID.String()
		resp.RuleID = &ruleID
	}
	return resp
}

// FromDomainMaintenanceList конвертирует список работ, присоединяя данные автомобилей
func FromDomainMaintenanceList(jobs []*domain.MaintenanceJob, vehicles map[uuid.UUID]*domain.Vehicle) []*MaintenanceResponse {
	result := make([]*MaintenanceResponse, 0, len(jobs))
	for _, job := range jobs {
		resp := FromDomainMaintenance(job)
		if v, ok := vehicles[job.VehicleID]; ok {
			resp.Vehicle = &VehicleSummary{
				ID:           v.ID.String(),
				Brand:        v.Brand,
				Model:        v.Model,
				LicensePlate: v.LicensePlate,
			}
		}
		result = append(result, resp)
	}
	return result
}
