package create_vehicle

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Brand) == "" || strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("%w: brand and model are required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.LicensePlate) == "" {
		return fmt.Errorf("%w: license_plate is required", ErrInvalidInput)
	}
	if req.Year < domain.MinVehicleYear {
		return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, req.Year)
	}
	if !domain.FuelType(req.FuelType).IsValid() {
		return fmt.Errorf("%w: unknown fuel_type %q", ErrInvalidInput, req.FuelType)
	}
	if req.Mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", ErrInvalidInput)
	}
	if req.Status != nil && !domain.VehicleStatus(*req.Status).IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}
	return nil
}
