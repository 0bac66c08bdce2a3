package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/vehicles/models"
)

// Service сервис управления автомобилями
type Service struct {
	vehicleRepo VehicleRepository
	lookup      ReservationLookup
	txManager   TransactionManager
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(vehicleRepo VehicleRepository, lookup ReservationLookup, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		lookup:      lookup,
		txManager:   txManager,
		logger:      logger,
		now:         time.Now,
	}
}

// Get возвращает автомобиль с производным статусом
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.VehicleResponse, error) {
	s.logger.Info("Get: vehicle id=%s", id)

	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Get: vehicle id=%s not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Get: repository error for vehicle id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return s.withDisplayStatus(ctx, "Get", v)
}

// List возвращает все автомобили, новые первыми
func (s *Service) List(ctx context.Context) ([]*models.VehicleResponse, error) {
	s.logger.Info("List: fetching vehicles")

	list, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	ids := make([]uuid.UUID, 0, len(list))
	for _, v := range list {
		ids = append(ids, v.ID)
	}
	reserved, err := s.lookup.ReservedNow(ctx, ids, s.now())
	if err != nil {
		s.logger.Error("List: failed to resolve reserved vehicles: %v", err)
		return nil, fmt.Errorf("%w: List - reserved lookup: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d vehicles, %d reserved now", len(list), len(reserved))
	return models.FromDomainVehicleList(list, reserved), nil
}

// Update частично обновляет автомобиль. Пробег не может уменьшаться.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Update: vehicle id=%s", id)

	var updated *domain.Vehicle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		v, err := s.vehicleRepo.LockByID(ctx, id)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: Update - lock vehicle: %v", ErrInternal, err)
		}

		if err := applyUpdate(v, req); err != nil {
			return err
		}

		updated, err = s.vehicleRepo.Update(ctx, v)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: Update - save vehicle: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Update: %v", err)
		} else {
			s.logger.Warn("Update: rejected for vehicle id=%s: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("Update: vehicle id=%s updated", id)
	return s.withDisplayStatus(ctx, "Update", updated)
}

// Assign закрепляет автомобиль за пользователем; nil снимает закрепление
func (s *Service) Assign(ctx context.Context, id uuid.UUID, userID *uuid.UUID) (*models.VehicleResponse, error) {
	if userID != nil && *userID == uuid.Nil {
		userID = nil
	}
	s.logger.Info("Assign: vehicle id=%s, user=%v", id, userID)

	if err := s.vehicleRepo.Assign(ctx, id, userID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Assign: vehicle id=%s not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Assign: repository error for vehicle id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
	}

	return s.Get(ctx, id)
}

// Delete удаляет автомобиль вместе с зависимыми записями
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: vehicle id=%s", id)

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%s not found", id)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: vehicle id=%s deleted", id)
	return nil
}

func (s *Service) withDisplayStatus(ctx context.Context, op string, v *domain.Vehicle) (*models.VehicleResponse, error) {
	reserved, err := s.lookup.ReservedNow(ctx, []uuid.UUID{v.ID}, s.now())
	if err != nil {
		s.logger.Error("%s: failed to resolve reserved state for vehicle id=%s: %v", op, v.ID, err)
		return nil, fmt.Errorf("%w: %s - reserved lookup: %v", ErrInternal, op, err)
	}
	return models.FromDomainVehicle(v, reserved[v.ID]), nil
}

func applyUpdate(v *domain.Vehicle, req *models.UpdateVehicleRequest) error {
	if req.Brand != nil {
		if strings.TrimSpace(*req.Brand) == "" {
			return fmt.Errorf("%w: brand is required", ErrInvalidInput)
		}
		v.Brand = *req.Brand
	}
	if req.Model != nil {
		if strings.TrimSpace(*req.Model) == "" {
			return fmt.Errorf("%w: model is required", ErrInvalidInput)
		}
		v.Model = *req.Model
	}
	if req.LicensePlate != nil {
		if strings.TrimSpace(*req.LicensePlate) == "" {
			return fmt.Errorf("%w: license_plate is required", ErrInvalidInput)
		}
		v.LicensePlate = *req.LicensePlate
	}
	if req.Year != nil {
		if *req.Year < domain.MinVehicleYear {
			return fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, *req.Year)
		}
		v.Year = *req.Year
	}
	if req.FuelType != nil {
		fuel := domain.FuelType(*req.FuelType)
		if !fuel.IsValid() {
			return fmt.Errorf("%w: unknown fuel_type %q", ErrInvalidInput, *req.FuelType)
		}
		v.FuelType = fuel
	}
	if req.Status != nil {
		status := domain.VehicleStatus(*req.Status)
		if !status.IsValid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		v.Status = status
	}
	if req.Mileage != nil {
		if *req.Mileage < v.Mileage {
			return fmt.Errorf("%w: %d < %d", ErrMileageDecrease, *req.Mileage, v.Mileage)
		}
		v.Mileage = *req.Mileage
	}

	if req.VIN != nil {
		v.VIN = nullable(*req.VIN)
	}
	if req.Color != nil {
		v.Color = nullable(*req.Color)
	}
	if req.InsuranceProvider != nil {
		v.InsuranceProvider = nullable(*req.InsuranceProvider)
	}
	if req.InsurancePolicyNumber != nil {
		v.InsurancePolicyNumber = nullable(*req.InsurancePolicyNumber)
	}
	if req.Notes != nil {
		if len(*req.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes too long", ErrInvalidInput)
		}
		v.Notes = nullable(*req.Notes)
	}

	if req.InsuranceExpiryDate != nil {
		d, err := parseDate("insurance_expiry_date", *req.InsuranceExpiryDate)
		if err != nil {
			return err
		}
		v.InsuranceExpiryDate = d
	}
	if req.LastTechnicalInspection != nil {
		d, err := parseDate("last_technical_inspection", *req.LastTechnicalInspection)
		if err != nil {
			return err
		}
		v.LastTechnicalInspection = d
	}

	return nil
}

// nullable приводит пустую строку к NULL
func nullable(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}

func parseDate(field, v string) (*time.Time, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateFormat, v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return &d, nil
}
