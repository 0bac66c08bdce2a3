package availability

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	HasBlockingOverlap(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
	VehiclesReservedAt(ctx context.Context, vehicleIDs []uuid.UUID, at time.Time) ([]uuid.UUID, error)
}

// MaintenanceRepository интерфейс репозитория обслуживания
type MaintenanceRepository interface {
	HasBlockingBetween(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error)
}

// ConflictMetrics счётчик отклонённых записей
type ConflictMetrics interface {
	IncConflict(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
