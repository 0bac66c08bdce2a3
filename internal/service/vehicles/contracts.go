package vehicles

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Assign(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationLookup вычисляет производный статус "reserved"
type ReservationLookup interface {
	ReservedNow(ctx context.Context, vehicleIDs []uuid.UUID, now time.Time) (map[uuid.UUID]bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
