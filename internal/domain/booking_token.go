package domain

import (
	"time"

	"github.com/google/uuid"
)

// GarageBookingToken single-use, time-boxed link for an external garage
type GarageBookingToken struct {
	ID            uuid.UUID
	Token         string
	VehicleID     uuid.UUID
	AlertRuleName string
	ExpiresAt     time.Time
	Used          bool
	CreatedAt     time.Time
}

// IsExpired returns true once now reaches ExpiresAt, regardless of Used
func (t *GarageBookingToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
