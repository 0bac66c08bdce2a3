package list_rules

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/rules/models"
)

type RuleService interface {
	ListActive(ctx context.Context) ([]*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
