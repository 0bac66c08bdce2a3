package garagebooking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// TokenRepository интерфейс хранилища токенов
type TokenRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.GarageBookingToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// MaintenanceRepository интерфейс репозитория обслуживания
type MaintenanceRepository interface {
	List(ctx context.Context, filter domain.MaintenanceFilter) ([]*domain.MaintenanceJob, error)
}

// RuleRepository интерфейс репозитория правил
type RuleRepository interface {
	GetByName(ctx context.Context, name string) (*domain.MaintenanceRule, error)
}

// Scheduler планировщик обслуживания с проверкой пересечений
type Scheduler interface {
	Schedule(ctx context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
