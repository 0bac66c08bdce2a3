package alerts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/alerts/models"
)

// Service загружает состояние парка и вычисляет по нему алерты
type Service struct {
	vehicleRepo     VehicleRepository
	ruleRepo        RuleRepository
	maintenanceRepo MaintenanceRepository
	txManager       TxManager
	engine          *Engine
	metrics         AlertMetrics
	logger          Logger
	now             func() time.Time
}

// NewService создает новый экземпляр сервиса алертов. metrics может быть nil.
func NewService(
	vehicleRepo VehicleRepository,
	ruleRepo RuleRepository,
	maintenanceRepo MaintenanceRepository,
	txManager TxManager,
	metrics AlertMetrics,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:     vehicleRepo,
		ruleRepo:        ruleRepo,
		maintenanceRepo: maintenanceRepo,
		txManager:       txManager,
		engine:          NewEngine(),
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// Current возвращает все алерты парка, отсортированные по приоритету
func (s *Service) Current(ctx context.Context) ([]domain.Alert, error) {
	var alerts []domain.Alert
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		vehicles, err := s.vehicleRepo.List(ctx)
		if err != nil {
			s.logger.Error("Current: failed to list vehicles: %v", err)
			return fmt.Errorf("%w: Current - list vehicles: %v", ErrInternal, err)
		}

		alerts, err = s.compute(ctx, vehicles, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.SetAlerts(countByPriority(alerts))
	}
	return alerts, nil
}

// All возвращает алерты по всему парку
func (s *Service) All(ctx context.Context) (*models.AlertListResponse, error) {
	s.logger.Info("All: computing fleet alerts")

	alerts, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("All: computed %d alerts", len(alerts))
	return models.FromDomainAlertList(alerts), nil
}

// ForVehicle возвращает алерты одного автомобиля
func (s *Service) ForVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.AlertListResponse, error) {
	s.logger.Info("ForVehicle: computing alerts for vehicle=%s", vehicleID)

	var alerts []domain.Alert
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				s.logger.Warn("ForVehicle: vehicle=%s not found", vehicleID)
				return ErrVehicleNotFound
			}
			s.logger.Error("ForVehicle: repository error for vehicle=%s: %v", vehicleID, err)
			return fmt.Errorf("%w: ForVehicle - get vehicle: %v", ErrInternal, err)
		}

		alerts, err = s.compute(ctx, []*domain.Vehicle{vehicle}, &vehicleID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ForVehicle: computed %d alerts for vehicle=%s", len(alerts), vehicleID)
	return models.FromDomainAlertList(alerts), nil
}

func (s *Service) compute(ctx context.Context, vehicles []*domain.Vehicle, vehicleID *uuid.UUID) ([]domain.Alert, error) {
	rules, err := s.ruleRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("compute: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: compute - list rules: %v", ErrInternal, err)
	}

	history, err := s.maintenanceRepo.List(ctx, domain.MaintenanceFilter{
		VehicleID: vehicleID,
		Statuses:  []domain.MaintenanceStatus{domain.MaintenanceCompleted},
	})
	if err != nil {
		s.logger.Error("compute: failed to list maintenance history: %v", err)
		return nil, fmt.Errorf("%w: compute - list history: %v", ErrInternal, err)
	}

	alerts := s.engine.Compute(s.now(), vehicles, rules, history)
	Sort(alerts)
	return alerts, nil
}

// Sort упорядочивает алерты: приоритет, номер автомобиля, имя правила
func Sort(alerts []domain.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}
		if a.LicensePlate != b.LicensePlate {
			return a.LicensePlate < b.LicensePlate
		}
		return a.RuleName < b.RuleName
	})
}

func countByPriority(alerts []domain.Alert) map[string]int {
	counts := map[string]int{
		string(domain.PriorityUrgent): 0,
		string(domain.PriorityHigh):   0,
		string(domain.PriorityNormal): 0,
		string(domain.PriorityLow):    0,
	}
	for _, a := range alerts {
		counts[string(a.Priority)]++
	}
	return counts
}
