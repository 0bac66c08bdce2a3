package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind discriminates the alert variant
type AlertKind string

const (
	AlertUsage    AlertKind = "usage"
	AlertCalendar AlertKind = "calendar"
)

// Priority of an alert
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Rank orders priorities, lower is more severe
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// IsNotifiable returns true for priorities pushed by the dispatcher
func (p Priority) IsNotifiable() bool {
	return p == PriorityUrgent || p == PriorityHigh
}

// DocumentKind regulatory document tracked by calendar alerts
type DocumentKind string

const (
	DocumentInsurance  DocumentKind = "insurance"
	DocumentInspection DocumentKind = "technical_inspection"
)

// Alert is derived on every read and never stored.
// Exactly one of Usage and Calendar is set, according to Kind.
type Alert struct {
	Kind         AlertKind
	VehicleID    uuid.UUID
	Brand        string
	Model        string
	LicensePlate string
	FuelType     FuelType
	RuleName     string
	Description  string
	Priority     Priority

	CurrentValue   int
	ThresholdValue int
	Remaining      int
	// Progress is CurrentValue/ThresholdValue clamped to [0, 1]
	Progress float64

	Usage    *UsageDetail
	Calendar *CalendarDetail
}

// UsageDetail fields specific to rule-based alerts
type UsageDetail struct {
	RuleID             uuid.UUID
	Unit               IntervalUnit
	LastServiceMileage *int
	LastServiceDate    *time.Time
}

// CalendarDetail fields specific to document alerts
type CalendarDetail struct {
	Document     DocumentKind
	DueDate      time.Time
	DaysUntilDue int
}

// DedupKey identifies the alert for notification deduplication
func (a *Alert) DedupKey() string {
	return DedupKey(a.VehicleID, a.RuleName)
}

// DedupKey builds "<vehicle_id>-<rule_name>"
func DedupKey(vehicleID uuid.UUID, ruleName string) string {
	return vehicleID.String() + "-" + ruleName
}
