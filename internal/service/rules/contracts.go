package rules

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

// RuleRepository интерфейс репозитория правил обслуживания
type RuleRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.MaintenanceRule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
