package create_vehicle

import (
	"time"

	"github.com/google/uuid"
)

// Request входные данные для добавления автомобиля
type Request struct {
	Brand                   string
	Model                   string
	Year                    int
	LicensePlate            string
	VIN                     *string
	Color                   *string
	FuelType                string
	Mileage                 int
	Status                  *string // по умолчанию available
	AssignedUserID          *uuid.UUID
	InsuranceProvider       *string
	InsurancePolicyNumber   *string
	InsuranceExpiryDate     *time.Time
	LastTechnicalInspection *time.Time
	Notes                   *string

	// MaintenanceUpToDate все применимые правила считаются выполненными на текущем пробеге
	MaintenanceUpToDate bool
}
