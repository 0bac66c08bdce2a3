package fuelcosts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	fuelcostRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/fuelcost"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts/models"
)

// Service журнал заправок
type Service struct {
	fuelCostRepo FuelCostRepository
	vehicleRepo  VehicleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса заправок
func NewService(fuelCostRepo FuelCostRepository, vehicleRepo VehicleRepository, logger Logger) *Service {
	return &Service{
		fuelCostRepo: fuelCostRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// Create добавляет заправку
func (s *Service) Create(ctx context.Context, req *models.CreateFuelCostRequest) (*models.FuelCostResponse, error) {
	s.logger.Info("Create: fuel cost for vehicle=%s, amount=%s", req.VehicleID, req.Amount.StringFixed(2))

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.vehicleRepo.GetByID(ctx, req.VehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Create: vehicle=%s not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Create: failed to get vehicle=%s: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: Create - get vehicle: %v", ErrInternal, err)
	}

	created, err := s.fuelCostRepo.Create(ctx, &domain.FuelCost{
		VehicleID: req.VehicleID,
		UserID:    req.UserID,
		Date:      req.Date,
		Liters:    req.Liters,
		Amount:    req.Amount,
		Mileage:   req.Mileage,
		Station:   req.Station,
		Notes:     req.Notes,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: fuel cost id=%s created", created.ID)
	return models.FromDomainFuelCost(created), nil
}

// ListByVehicle возвращает заправки автомобиля, последние первыми
func (s *Service) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.FuelCostResponse, error) {
	list, err := s.fuelCostRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		s.logger.Error("ListByVehicle: repository error for vehicle=%s: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: ListByVehicle - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.FuelCostResponse, 0, len(list))
	for _, fc := range list {
		result = append(result, models.FromDomainFuelCost(fc))
	}
	return result, nil
}

// Delete удаляет заправку
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: fuel cost id=%s", id)

	if err := s.fuelCostRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, fuelcostRepo.ErrFuelCostNotFound) {
			s.logger.Warn("Delete: fuel cost id=%s not found", id)
			return ErrFuelCostNotFound
		}
		s.logger.Error("Delete: repository error for fuel cost id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

func validateCreate(req *models.CreateFuelCostRequest) error {
	if req.VehicleID == uuid.Nil {
		return fmt.Errorf("%w: vehicle_id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.Liters.IsPositive() {
		return fmt.Errorf("%w: liters must be positive", ErrInvalidInput)
	}
	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if req.Mileage != nil && *req.Mileage < 0 {
		return fmt.Errorf("%w: mileage must not be negative", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}
	return nil
}
