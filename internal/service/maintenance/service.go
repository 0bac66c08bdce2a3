package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	maintenanceRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/maintenance"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

// Service планировщик технического обслуживания
type Service struct {
	maintenanceRepo MaintenanceRepository
	vehicleRepo     VehicleRepository
	ruleRepo        RuleRepository
	checker         ConflictChecker
	dedup           DedupClearer
	txManager       TransactionManager
	logger          Logger
	now             func() time.Time
}

// NewService создает новый экземпляр планировщика. dedup может быть nil.
func NewService(
	maintenanceRepo MaintenanceRepository,
	vehicleRepo VehicleRepository,
	ruleRepo RuleRepository,
	checker ConflictChecker,
	dedup DedupClearer,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		ruleRepo:        ruleRepo,
		checker:         checker,
		dedup:           dedup,
		txManager:       txManager,
		logger:          logger,
		now:             time.Now,
	}
}

// Create создает работу. Блокирующая работа проверяется на пересечения
// в точке scheduled_date; работа, внесённая сразу как completed, не проверяется.
func (s *Service) Create(ctx context.Context, req *models.CreateMaintenanceRequest) (*models.MaintenanceResponse, error) {
	s.logger.Info("Create: vehicle=%s, type=%s, scheduled=%s",
		req.VehicleID, req.Type, req.ScheduledDate.Format(time.RFC3339))

	job, err := s.toDomain(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.Schedule(ctx, job)
	if err != nil {
		return nil, s.translate("Create", err)
	}

	if created.IsCompleted() {
		s.forget(ctx, created)
	}

	s.logger.Info("Create: maintenance id=%s created, status=%s", created.ID, created.Status)
	return models.FromDomainMaintenance(created), nil
}

// Schedule сохраняет работу под блокировкой строки автомобиля.
// Если ctx уже содержит транзакцию, работа выполняется в ней.
func (s *Service) Schedule(ctx context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error) {
	var created *domain.MaintenanceJob
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if _, err := s.vehicleRepo.LockByID(ctx, job.VehicleID); err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: Schedule - lock vehicle: %v", ErrInternal, err)
		}

		if job.Status.IsBlocking() {
			if err := s.checker.EnsureFree(ctx, job.VehicleID, job.ScheduledDate, job.ScheduledDate, nil); err != nil {
				return err
			}
		}

		var err error
		created, err = s.maintenanceRepo.Create(ctx, job)
		if err != nil {
			return fmt.Errorf("%w: Schedule - insert job: %v", ErrInternal, err)
		}

		if created.IsCompleted() && created.MileageAtService != nil {
			if err := s.vehicleRepo.RaiseMileage(ctx, created.VehicleID, *created.MileageAtService); err != nil {
				return fmt.Errorf("%w: Schedule - raise mileage: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update частично обновляет работу, проверяя переход статуса.
// При завершении пробег автомобиля поднимается до mileage_at_service,
// а отметки об уведомлениях по автомобилю сбрасываются.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateMaintenanceRequest) (*models.MaintenanceResponse, error) {
	s.logger.Info("Update: maintenance id=%s", id)

	var completing bool
	var updated *domain.MaintenanceJob
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		job, err := s.maintenanceRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, maintenanceRepo.ErrMaintenanceNotFound) {
				return ErrMaintenanceNotFound
			}
			return fmt.Errorf("%w: Update - get job: %v", ErrInternal, err)
		}
		wasCompleted := job.IsCompleted()

		if err := s.apply(job, req); err != nil {
			return err
		}

		if (req.VehicleID != nil || req.ScheduledDate != nil) && job.Status.IsBlocking() {
			if _, err := s.vehicleRepo.LockByID(ctx, job.VehicleID); err != nil {
				if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
					return ErrVehicleNotFound
				}
				return fmt.Errorf("%w: Update - lock vehicle: %v", ErrInternal, err)
			}
			if err := s.checker.EnsureFree(ctx, job.VehicleID, job.ScheduledDate, job.ScheduledDate, &job.ID); err != nil {
				return err
			}
		}

		completing = job.IsCompleted() && !wasCompleted
		if completing && job.CompletedDate == nil {
			now := s.now()
			job.CompletedDate = &now
		}

		updated, err = s.maintenanceRepo.Update(ctx, job)
		if err != nil {
			if errors.Is(err, maintenanceRepo.ErrMaintenanceNotFound) {
				return ErrMaintenanceNotFound
			}
			return fmt.Errorf("%w: Update - save job: %v", ErrInternal, err)
		}

		if updated.IsCompleted() && updated.MileageAtService != nil && (completing || req.MileageAtService != nil) {
			if err := s.vehicleRepo.RaiseMileage(ctx, updated.VehicleID, *updated.MileageAtService); err != nil {
				return fmt.Errorf("%w: Update - raise mileage: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.translate("Update", err)
	}

	if completing {
		s.forget(ctx, updated)
	}

	s.logger.Info("Update: maintenance id=%s updated, status=%s", id, updated.Status)
	return models.FromDomainMaintenance(updated), nil
}

// List возвращает все работы с данными автомобилей, от новых к старым
func (s *Service) List(ctx context.Context) ([]*models.MaintenanceResponse, error) {
	return s.list(ctx, "List", domain.MaintenanceFilter{})
}

// ListByVehicle возвращает работы автомобиля
func (s *Service) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.MaintenanceResponse, error) {
	return s.list(ctx, "ListByVehicle", domain.MaintenanceFilter{VehicleID: &vehicleID})
}

func (s *Service) list(ctx context.Context, op string, filter domain.MaintenanceFilter) ([]*models.MaintenanceResponse, error) {
	jobs, err := s.maintenanceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - list jobs: %v", ErrInternal, op, err)
	}

	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("%s: failed to load vehicles: %v", op, err)
		return nil, fmt.Errorf("%w: %s - list vehicles: %v", ErrInternal, op, err)
	}
	byID := make(map[uuid.UUID]*domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	s.logger.Info("%s: fetched %d jobs", op, len(jobs))
	return models.FromDomainMaintenanceList(jobs, byID), nil
}

func (s *Service) toDomain(req *models.CreateMaintenanceRequest) (*domain.MaintenanceJob, error) {
	if req.VehicleID == uuid.Nil {
		return nil, fmt.Errorf("%w: vehicle_id is required", ErrInvalidInput)
	}
	if req.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduled_date is required", ErrInvalidInput)
	}
	if req.Description == "" || len(req.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	typ := domain.MaintenanceType(req.Type)
	if !typ.IsValid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, req.Type)
	}

	status := domain.MaintenanceScheduled
	if req.Status != nil {
		status = domain.MaintenanceStatus(*req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
	}

	if req.MileageAtService != nil && *req.MileageAtService < 0 {
		return nil, fmt.Errorf("%w: mileage_at_service must not be negative", ErrInvalidInput)
	}
	if req.Cost != nil && req.Cost.IsNegative() {
		return nil, fmt.Errorf("%w: cost must not be negative", ErrInvalidInput)
	}

	job := &domain.MaintenanceJob{
		VehicleID:        req.VehicleID,
		RuleID:           req.RuleID,
		Type:             typ,
		Description:      req.Description,
		Status:           status,
		ScheduledDate:    req.ScheduledDate,
		CompletedDate:    req.CompletedDate,
		MileageAtService: req.MileageAtService,
		Cost:             req.Cost,
		Provider:         req.Provider,
		Notes:            req.Notes,
	}
	if job.IsCompleted() && job.CompletedDate == nil {
		completed := job.ScheduledDate
		job.CompletedDate = &completed
	}
	return job, nil
}

func (s *Service) apply(job *domain.MaintenanceJob, req *models.UpdateMaintenanceRequest) error {
	if req.Status != nil {
		next := domain.MaintenanceStatus(*req.Status)
		if !next.IsValid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		if !job.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, next)
		}
		job.Status = next
	}
	if req.Type != nil {
		typ := domain.MaintenanceType(*req.Type)
		if !typ.IsValid() {
			return fmt.Errorf("%w: unknown type %q", ErrInvalidInput, *req.Type)
		}
		job.Type = typ
	}
	if req.MileageAtService != nil && *req.MileageAtService < 0 {
		return fmt.Errorf("%w: mileage_at_service must not be negative", ErrInvalidInput)
	}

	if req.VehicleID != nil {
		job.VehicleID = *req.VehicleID
	}
	if req.RuleID != nil {
		job.RuleID = req.RuleID
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.ScheduledDate != nil {
		job.ScheduledDate = *req.ScheduledDate
	}
	if req.CompletedDate != nil {
		job.CompletedDate = req.CompletedDate
	}
	if req.MileageAtService != nil {
		job.MileageAtService = req.MileageAtService
	}
	if req.Cost != nil {
		job.Cost = req.Cost
	}
	if req.Provider != nil {
		job.Provider = req.Provider
	}
	if req.Notes != nil {
		job.Notes = req.Notes
	}
	return nil
}

// forget сбрасывает отметки об уведомлениях после завершения работы,
// чтобы следующий цикл по этому правилу снова мог отправить письмо
func (s *Service) forget(ctx context.Context, job *domain.MaintenanceJob) {
	if s.dedup == nil {
		return
	}

	ruleName := ""
	if job.RuleID != nil {
		rule, err := s.ruleRepo.GetByID(ctx, *job.RuleID)
		if err != nil {
			s.logger.Warn("forget: failed to resolve rule=%s, clearing all keys of vehicle=%s: %v", *job.RuleID, job.VehicleID, err)
		} else {
			ruleName = rule.Name
		}
	}

	s.dedup.ForgetVehicle(job.VehicleID, ruleName)
}

func (s *Service) translate(op string, err error) error {
	switch {
	case errors.Is(err, availability.ErrConflict):
		s.logger.Warn("%s: rejected: %v", op, err)
		return err
	case errors.Is(err, ErrMaintenanceNotFound),
		errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: rejected: %v", op, err)
		return err
	case errors.Is(err, ErrInternal):
		s.logger.Error("%s: %v", op, err)
		return err
	default:
		s.logger.Error("%s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}
}
