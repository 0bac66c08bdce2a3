package alerts

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// VehicleRepository интерфейс репозитория автомобилей
type VehicleRepository interface {
	List(ctx context.Context) ([]*domain.Vehicle, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error)
}

// RuleRepository интерфейс репозитория правил обслуживания
type RuleRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.MaintenanceRule, error)
}

// MaintenanceRepository интерфейс репозитория обслуживания
type MaintenanceRepository interface {
	List(ctx context.Context, filter domain.MaintenanceFilter) ([]*domain.MaintenanceJob, error)
}

// TxManager выполняет загрузку состояния парка в одной транзакции чтения
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// AlertMetrics публикует количество алертов по приоритетам
type AlertMetrics interface {
	SetAlerts(byPriority map[string]int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
