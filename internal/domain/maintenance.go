package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaintenanceType represents the kind of maintenance job
type MaintenanceType string

const (
	MaintenanceRoutine    MaintenanceType = "routine"
	MaintenanceRepair     MaintenanceType = "repair"
	MaintenanceInspection MaintenanceType = "inspection"
	MaintenanceOther      MaintenanceType = "other"
)

// IsValid returns true if the type is one of the known values
func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceRoutine, MaintenanceRepair, MaintenanceInspection, MaintenanceOther:
		return true
	}
	return false
}

// MaintenanceStatus represents the status of a maintenance job
type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

// BlockingMaintenanceStatuses statuses that occupy the vehicle
var BlockingMaintenanceStatuses = []MaintenanceStatus{
	MaintenanceScheduled,
	MaintenanceInProgress,
}

var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceScheduled:  {MaintenanceInProgress, MaintenanceCancelled, MaintenanceCompleted},
	MaintenanceInProgress: {MaintenanceCompleted},
}

// IsValid returns true if the status is one of the known values
func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	}
	return false
}

// IsBlocking returns true if a job in this status occupies the vehicle
func (s MaintenanceStatus) IsBlocking() bool {
	return s == MaintenanceScheduled || s == MaintenanceInProgress
}

// CanTransitionTo reports whether the job may move to next
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range maintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaintenanceJob represents a maintenance record.
// Its blocking window is the instant [ScheduledDate, ScheduledDate].
type MaintenanceJob struct {
	ID               uuid.UUID
	VehicleID        uuid.UUID
	RuleID           *uuid.UUID
	Type             MaintenanceType
	Description      string
	Status           MaintenanceStatus
	ScheduledDate    time.Time
	CompletedDate    *time.Time
	MileageAtService *int
	Cost             *decimal.Decimal
	Provider         *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsCompleted returns true if the job is completed
func (m *MaintenanceJob) IsCompleted() bool {
	return m.Status == MaintenanceCompleted
}

// CompletedAt returns the completion date, falling back to the scheduled date
func (m *MaintenanceJob) CompletedAt() time.Time {
	if m.CompletedDate != nil {
		return *m.CompletedDate
	}
	return m.ScheduledDate
}

// MaintenanceFilter фильтр выборки работ
type MaintenanceFilter struct {
	VehicleID *uuid.UUID          // опционально
	Statuses  []MaintenanceStatus // пустой = все статусы
	Ascending bool                // сортировка по scheduled_date, по умолчанию от новых к старым
}
