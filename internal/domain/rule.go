package domain

import (
	"github.com/google/uuid"
)

// IntervalUnit unit of a maintenance rule interval
type IntervalUnit string

const (
	IntervalKm   IntervalUnit = "km"
	IntervalDays IntervalUnit = "days"
)

// MaintenanceRule per-fuel-type maintenance policy
type MaintenanceRule struct {
	ID            uuid.UUID
	Name          string
	Description   string
	FuelTypes     []FuelType
	IntervalUnit  IntervalUnit
	IntervalValue int
	// WarningValue remaining-to-due at which the alert becomes high priority.
	// nil means DefaultWarningPercent of IntervalValue.
	WarningValue *int
	IsActive     bool
}

// AppliesTo returns true if the rule covers the fuel type
func (r *MaintenanceRule) AppliesTo(fuel FuelType) bool {
	for _, f := range r.FuelTypes {
		if f == fuel {
			return true
		}
	}
	return false
}

// Warning returns the effective warning band width, at least 1
func (r *MaintenanceRule) Warning() int {
	w := r.IntervalValue * DefaultWarningPercent / 100
	if r.WarningValue != nil {
		w = *r.WarningValue
	}
	if w < 1 {
		w = 1
	}
	return w
}
