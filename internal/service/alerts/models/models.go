package models

import (
	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// AlertResponse алерт в формате панели управления
type AlertResponse struct {
	Kind           string  `json:"kind"`
	VehicleID      string  `json:"vehicle_id"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	LicensePlate   string  `json:"license_plate"`
	FuelType       string  `json:"fuel_type"`
	RuleName       string  `json:"rule_name"`
	Description    string  `json:"description"`
	Priority       string  `json:"priority"`
	CurrentValue   int     `json:"current_value"`
	ThresholdValue int     `json:"threshold_value"`
	Remaining      int     `json:"remaining"`
	Progress       float64 `json:"progress"`

	// usage
	RuleID             *string `json:"rule_id,omitempty"`
	Unit               *string `json:"unit,omitempty"`
	LastServiceMileage *int    `json:"last_service_mileage,omitempty"`
	LastServiceDate    *string `json:"last_service_date,omitempty"`

	// calendar
	Document     *string `json:"document,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	DaysUntilDue *int    `json:"days_until_due,omitempty"`
}

// AlertListResponse список алертов со сводкой по приоритетам
type AlertListResponse struct {
	Alerts  []AlertResponse `json:"alerts"`
	Total   int             `json:"total"`
	Summary map[string]int  `json:"summary"`
}

// FromDomainAlert конвертирует доменный алерт в ответ
func FromDomainAlert(a domain.Alert) AlertResponse {
	resp := AlertResponse{
		Kind:           string(a.Kind),
		VehicleID:      a.VehicleID.String(),
		Brand:          a.Brand,
		Model:          a.Model,
		LicensePlate:   a.LicensePlate,
		FuelType:       string(a.FuelType),
		RuleName:       a.RuleName,
		Description:    a.Description,
		Priority:       string(a.Priority),
		CurrentValue:   a.CurrentValue,
		ThresholdValue: a.ThresholdValue,
		Remaining:      a.Remaining,
		Progress:       a.Progress,
	}

	if u := a.Usage; u != nil {
		ruleID := u.RuleID.String()
		unit := string(u.Unit)
		resp.RuleID = &ruleID
		resp.Unit = &unit
		resp.LastServiceMileage = u.LastServiceMileage
		if u.LastServiceDate != nil {
			date := u.LastServiceDate.Format(domain.DateFormat)
			resp.LastServiceDate = &date
		}
	}

	if c := a.Calendar; c != nil {
		doc := string(c.Document)
		due := c.DueDate.Format(domain.DateFormat)
		days := c.DaysUntilDue
		resp.Document = &doc
		resp.DueDate = &due
		resp.DaysUntilDue = &days
	}

	return resp
}

// FromDomainAlertList конвертирует список алертов в ответ
func FromDomainAlertList(alerts []domain.Alert) *AlertListResponse {
	resp := &AlertListResponse{
		Alerts: make([]AlertResponse, 0, len(alerts)),
		Total:  len(alerts),
		Summary: map[string]int{
			string(domain.PriorityUrgent): 0,
			string(domain.PriorityHigh):   0,
			string(domain.PriorityNormal): 0,
			string(domain.PriorityLow):    0,
		},
	}
	for _, a := range alerts {
		resp.Alerts = append(resp.Alerts, FromDomainAlert(a))
		resp.Summary[string(a.Priority)]++
	}
	return resp
}
