package return_vehicle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	Complete(ctx context.Context, res *domain.Reservation) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	SetMileageAndStatus(ctx context.Context, id uuid.UUID, mileage int, status domain.VehicleStatus) error
}

// MaintenanceRepository интерфейс репозитория обслуживания
type MaintenanceRepository interface {
	Create(ctx context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
