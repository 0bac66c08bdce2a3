package list_profiles

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/profiles/models"
)

type ProfileService interface {
	List(ctx context.Context) ([]*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
