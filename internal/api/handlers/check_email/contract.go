package check_email

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/profiles/models"
)

type ProfileService interface {
	CheckEmail(ctx context.Context, email string) (*models.CheckEmailResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
