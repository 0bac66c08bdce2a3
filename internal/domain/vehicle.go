package domain

import (
	"time"

	"github.com/google/uuid"
)

// FuelType represents the energy source of a vehicle
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// IsValid returns true if the fuel type is one of the known values
func (f FuelType) IsValid() bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid:
		return true
	}
	return false
}

// VehicleStatus is the operator-controlled vehicle status.
// "reserved" is never stored, see DisplayStatus.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleUnavailable VehicleStatus = "unavailable"

	// VehicleReserved is a derived display state
	VehicleReserved VehicleStatus = "reserved"
)

// IsValid returns true for statuses that may be persisted
func (s VehicleStatus) IsValid() bool {
	switch s {
	case VehicleAvailable, VehicleMaintenance, VehicleUnavailable:
		return true
	}
	return false
}

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID           uuid.UUID
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	VIN          *string
	Color        *string
	FuelType     FuelType
	Mileage      int
	Status       VehicleStatus

	// Exclusive assignment: only the assignee may reserve the vehicle
	AssignedUserID *uuid.UUID

	InsuranceProvider       *string
	InsurancePolicyNumber   *string
	InsuranceExpiryDate     *time.Time
	LastTechnicalInspection *time.Time

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAssigned returns true if the vehicle is assigned to a user
func (v *Vehicle) IsAssigned() bool {
	return v.AssignedUserID != nil
}

// CanBeReservedBy returns false when the vehicle is assigned to somebody else
func (v *Vehicle) CanBeReservedBy(userID uuid.UUID) bool {
	return v.AssignedUserID == nil || *v.AssignedUserID == userID
}

// DisplayStatus returns "reserved" for an available vehicle that has a
// blocking reservation covering the current moment
func (v *Vehicle) DisplayStatus(reservedNow bool) VehicleStatus {
	if v.Status == VehicleAvailable && reservedNow {
		return VehicleReserved
	}
	return v.Status
}
