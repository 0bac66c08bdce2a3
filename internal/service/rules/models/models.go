package models

import "github.com/m04kA/SMC-FleetService/internal/domain"

// RuleResponse правило обслуживания
type RuleResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	FuelTypes     []string `json:"fuel_types"`
	IntervalUnit  string   `json:"interval_unit"`
	IntervalValue int      `json:"interval_value"`
	WarningValue  int      `json:"warning_value"`
	IsActive      bool     `json:"is_active"`
}

// FromDomainRule конвертирует правило в ответ; warning_value всегда эффективное значение
func FromDomainRule(r *domain.MaintenanceRule) *RuleResponse {
	fuels := make([]string, 0, len(r.FuelTypes))
	for _, f := range r.FuelTypes {
		fuels = append(fuels, string(f))
	}
	return &RuleResponse{
		ID:            r.ID.String(),
		Name:          r.Name,
		Description:   r.Description,
		FuelTypes:     fuels,
		IntervalUnit:  string(r.IntervalUnit),
		IntervalValue: r.IntervalValue,
		WarningValue:  r.Warning(),
		IsActive:      r.IsActive,
	}
}
