package submit_garage_booking

import (
	"context"

	"github.com/m04kA/SMC-FleetService/internal/service/garagebooking/models"
)

type GarageBookingService interface {
	Submit(ctx context.Context, token string, req *models.SubmitRequest) (*models.SubmitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
