package maintenance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// MaintenanceRepository интерфейс репозитория обслуживания
type MaintenanceRepository interface {
	Create(ctx context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceJob, error)
	List(ctx context.Context, filter domain.MaintenanceFilter) ([]*domain.MaintenanceJob, error)
	Update(ctx context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error)
}

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
	RaiseMileage(ctx context.Context, id uuid.UUID, mileage int) error
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// RuleRepository интерфейс репозитория правил обслуживания
type RuleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRule, error)
}

// ConflictChecker проверка пересечений окна работы
type ConflictChecker interface {
	EnsureFree(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) error
}

// DedupClearer сбрасывает отметки об отправленных уведомлениях.
// Пустой ruleName сбрасывает все отметки автомобиля.
type DedupClearer interface {
	ForgetVehicle(vehicleID uuid.UUID, ruleName string)
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
