package create_vehicle

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/vehicles/models"
)

const (
	baselineDescriptionSuffix = "État initial (maintenance à jour à l'ajout)"
	baselineNotes             = "Enregistrement automatique - maintenance déclarée à jour lors de l'ajout du véhicule"
)

// UseCase use case добавления автомобиля с начальной историей обслуживания
type UseCase struct {
	vehicleRepo     VehicleRepository
	ruleRepo        RuleRepository
	maintenanceRepo MaintenanceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	ruleRepo RuleRepository,
	maintenanceRepo MaintenanceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo:     vehicleRepo,
		ruleRepo:        ruleRepo,
		maintenanceRepo: maintenanceRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute добавляет автомобиль. Если обслуживание объявлено актуальным и пробег
// больше нуля, для каждого активного правила его типа топлива в той же транзакции
// создаётся завершённая работа на текущем пробеге.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.VehicleResponse, error) {
	uc.logger.Info("CreateVehicle: plate=%s, fuel=%s, mileage=%d, up_to_date=%t",
		req.LicensePlate, req.FuelType, req.Mileage, req.MaintenanceUpToDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateVehicle: validation failed: %v", err)
		return nil, err
	}

	vehicle := toDomain(req)
	seeded := 0

	// 2. Автомобиль и начальная история в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.vehicleRepo.Create(txCtx, vehicle)
		if err != nil {
			uc.logger.Error("CreateVehicle: failed to insert vehicle: %v", err)
			return fmt.Errorf("%w: failed to insert vehicle: %v", ErrInternal, err)
		}
		vehicle = created

		if !req.MaintenanceUpToDate || vehicle.Mileage <= 0 {
			return nil
		}

		// 2.1. Применимые правила
		rules, err := uc.ruleRepo.List(txCtx, true)
		if err != nil {
			uc.logger.Error("CreateVehicle: failed to load rules: %v", err)
			return fmt.Errorf("%w: failed to load rules: %v", ErrInternal, err)
		}

		// 2.2. Завершённая работа на каждое правило
		now := uc.timeProvider.Now()
		for _, rule := range rules {
			if !rule.IsActive || !rule.AppliesTo(vehicle.FuelType) {
				continue
			}

			ruleID := rule.ID
			mileage := vehicle.Mileage
			completed := now
			notes := baselineNotes
			_, err := uc.maintenanceRepo.Create(txCtx, &domain.MaintenanceJob{
				VehicleID:        vehicle.ID,
				RuleID:           &ruleID,
				Type:             domain.MaintenanceRoutine,
				Description:      fmt.Sprintf("%s - %s", rule.Name, baselineDescriptionSuffix),
				Status:           domain.MaintenanceCompleted,
				ScheduledDate:    now,
				CompletedDate:    &completed,
				MileageAtService: &mileage,
				Notes:            &notes,
			})
			if err != nil {
				uc.logger.Error("CreateVehicle: failed to seed rule=%s: %v", rule.Name, err)
				return fmt.Errorf("%w: failed to seed rule %s: %v", ErrInternal, rule.Name, err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateVehicle: vehicle id=%s created, %d baseline records", vehicle.ID, seeded)
	return models.FromDomainVehicle(vehicle, false), nil
}

func toDomain(req *Request) *domain.Vehicle {
	status := domain.VehicleAvailable
	if req.Status != nil {
		status = domain.VehicleStatus(*req.Status)
	}

	return &domain.Vehicle{
		Brand:                   req.Brand,
		Model:                   req.Model,
		Year:                    req.Year,
		LicensePlate:            req.LicensePlate,
		VIN:                     nullable(req.VIN),
		Color:                   nullable(req.Color),
		FuelType:                domain.FuelType(req.FuelType),
		Mileage:                 req.Mileage,
		Status:                  status,
		AssignedUserID:          req.AssignedUserID,
		InsuranceProvider:       nullable(req.InsuranceProvider),
		InsurancePolicyNumber:   nullable(req.InsurancePolicyNumber),
		InsuranceExpiryDate:     req.InsuranceExpiryDate,
		LastTechnicalInspection: req.LastTechnicalInspection,
		Notes:                   nullable(req.Notes),
	}
}

func nullable(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	return v
}
