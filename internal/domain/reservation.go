package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationApproved  ReservationStatus = "approved"
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// BlockingReservationStatuses statuses that occupy the vehicle
var BlockingReservationStatuses = []ReservationStatus{
	ReservationPending,
	ReservationApproved,
	ReservationActive,
}

// reservationTransitions allowed manual transitions.
// completed is reachable only through the return operation.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:  {ReservationApproved, ReservationCancelled},
	ReservationApproved: {ReservationActive, ReservationCancelled},
	ReservationActive:   {ReservationCancelled},
}

// IsValid returns true if the status is one of the known values
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationApproved, ReservationActive, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// IsBlocking returns true if a reservation in this status occupies the vehicle
func (s ReservationStatus) IsBlocking() bool {
	return s == ReservationPending || s == ReservationApproved || s == ReservationActive
}

// IsTerminal returns true for completed and cancelled
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationCompleted || s == ReservationCancelled
}

// CanTransitionTo reports whether a manual update may move the reservation to next.
// Setting the current status again is a no-op and allowed.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanBeReturned returns true if the return operation is allowed for this status
func (s ReservationStatus) CanBeReturned() bool {
	return s == ReservationApproved || s == ReservationActive
}

// Reservation represents a vehicle reservation over [StartDate, EndDate)
type Reservation struct {
	ID            uuid.UUID
	VehicleID     uuid.UUID
	UserID        uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	Status        ReservationStatus
	Purpose       *string
	StartLocation *string
	EndLocation   *string
	Notes         *string

	// Return data
	EndMileage          *int
	FuelLevel           *string
	BatteryLevel        *int
	HasIncident         bool
	IncidentDescription *string
	FuelCost            *decimal.Decimal
	ParkingCost         *decimal.Decimal
	TollCost            *decimal.Decimal
	ReturnedAt          *time.Time

	// UserNotified is false while the user has an unread status change
	UserNotified bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActiveAt returns true if the reservation is blocking and covers t
func (r *Reservation) IsActiveAt(t time.Time) bool {
	return r.Status.IsBlocking() && !t.Before(r.StartDate) && t.Before(r.EndDate)
}

// ReturnDetails data submitted when a vehicle is brought back
type ReturnDetails struct {
	Mileage             int
	FuelLevel           *string
	BatteryLevel        *int
	HasIncident         bool
	IncidentDescription *string
	FuelCost            *decimal.Decimal
	ParkingCost         *decimal.Decimal
	TollCost            *decimal.Decimal
}

// ReservationFilter фильтр выборки бронирований
type ReservationFilter struct {
	VehicleID *uuid.UUID          // опционально
	UserID    *uuid.UUID          // опционально
	Statuses  []ReservationStatus // пустой = все статусы
	Ascending bool                // сортировка по start_date, по умолчанию от новых к старым
}
