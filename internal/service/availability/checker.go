package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// Checker проверяет пересечение окна с блокирующими бронированиями и работами
type Checker struct {
	reservationRepo ReservationRepository
	maintenanceRepo MaintenanceRepository
	metrics         ConflictMetrics
	logger          Logger
}

// NewChecker создает новый экземпляр проверки пересечений.
// metrics может быть nil.
func NewChecker(
	reservationRepo ReservationRepository,
	maintenanceRepo MaintenanceRepository,
	metrics ConflictMetrics,
	logger Logger,
) *Checker {
	return &Checker{
		reservationRepo: reservationRepo,
		maintenanceRepo: maintenanceRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// HasConflict возвращает вид первой найденной блокирующей записи, пересекающей [start, end].
// Сначала проверяются бронирования, затем работы. excludeID исключает саму запись.
func (c *Checker) HasConflict(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (domain.ConflictKind, error) {
	found, err := c.reservationRepo.HasBlockingOverlap(ctx, vehicleID, start, end, excludeID)
	if err != nil {
		c.logger.Error("HasConflict: reservation lookup failed for vehicle=%s: %v", vehicleID, err)
		return domain.ConflictNone, fmt.Errorf("%w: HasConflict - reservations: %v", ErrInternal, err)
	}
	if found {
		return domain.ConflictReservation, nil
	}

	found, err = c.maintenanceRepo.HasBlockingBetween(ctx, vehicleID, start, end, excludeID)
	if err != nil {
		c.logger.Error("HasConflict: maintenance lookup failed for vehicle=%s: %v", vehicleID, err)
		return domain.ConflictNone, fmt.Errorf("%w: HasConflict - maintenance: %v", ErrInternal, err)
	}
	if found {
		return domain.ConflictMaintenance, nil
	}

	return domain.ConflictNone, nil
}

// EnsureFree возвращает *ConflictError, если окно занято
func (c *Checker) EnsureFree(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error {
	kind, err := c.HasConflict(ctx, vehicleID, start, end, excludeID)
	if err != nil {
		return err
	}
	if kind != domain.ConflictNone {
		c.logger.Warn("EnsureFree: vehicle=%s window %s..%s conflicts with %s",
			vehicleID, start.Format(time.RFC3339), end.Format(time.RFC3339), kind)
		if c.metrics != nil {
			c.metrics.IncConflict(string(kind))
		}
		return &ConflictError{Kind: kind}
	}
	return nil
}

// ReservedNow возвращает множество автомобилей, занятых блокирующим бронированием в момент now
func (c *Checker) ReservedNow(ctx context.Context, vehicleIDs []uuid.UUID, now time.Time) (map[uuid.UUID]bool, error) {
	ids, err := c.reservationRepo.VehiclesReservedAt(ctx, vehicleIDs, now)
	if err != nil {
		c.logger.Error("ReservedNow: lookup failed: %v", err)
		return nil, fmt.Errorf("%w: ReservedNow: %v", ErrInternal, err)
	}

	reserved := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		reserved[id] = true
	}
	return reserved, nil
}
