package reservations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnnotified(ctx context.Context, userID uuid.UUID) (int, error)
	MarkNotified(ctx context.Context, userID uuid.UUID) (int64, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// ConflictChecker проверка пересечений окна бронирования
type ConflictChecker interface {
	EnsureFree(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
