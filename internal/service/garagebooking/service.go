package garagebooking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	tokenRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/bookingtoken"
	ruleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/rule"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/garagebooking/models"
	maintenanceService "github.com/m04kA/SMC-FleetService/internal/service/maintenance"
	maintenanceModels "github.com/m04kA/SMC-FleetService/internal/service/maintenance/models"
)

const submittedMessage = "Rendez-vous enregistré avec succès."

// Service публичная запись автосервиса по ссылке из письма
type Service struct {
	tokenRepo       TokenRepository
	vehicleRepo     VehicleRepository
	reservationRepo ReservationRepository
	maintenanceRepo MaintenanceRepository
	ruleRepo        RuleRepository
	scheduler       Scheduler
	txManager       TransactionManager
	logger          Logger

	// allowResubmit разрешает повторную запись по уже использованному токену
	allowResubmit bool
	now           func() time.Time
}

// NewService создает новый экземпляр сервиса записи
func NewService(
	tokenRepo TokenRepository,
	vehicleRepo VehicleRepository,
	reservationRepo ReservationRepository,
	maintenanceRepo MaintenanceRepository,
	ruleRepo RuleRepository,
	scheduler Scheduler,
	txManager TransactionManager,
	allowResubmit bool,
	logger Logger,
) *Service {
	return &Service{
		tokenRepo:       tokenRepo,
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
		maintenanceRepo: maintenanceRepo,
		ruleRepo:        ruleRepo,
		scheduler:       scheduler,
		txManager:       txManager,
		logger:          logger,
		allowResubmit:   allowResubmit,
		now:             time.Now,
	}
}

// Get возвращает автомобиль и его занятость по токену
func (s *Service) Get(ctx context.Context, token string) (*models.BookingPageResponse, error) {
	t, err := s.lookup(ctx, "Get", token)
	if err != nil {
		return nil, err
	}

	v, err := s.vehicleRepo.GetByID(ctx, t.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Get: vehicle=%s of token id=%s not found", t.VehicleID, t.ID)
			return nil, ErrTokenNotFound
		}
		s.logger.Error("Get: failed to get vehicle=%s: %v", t.VehicleID, err)
		return nil, fmt.Errorf("%w: Get - get vehicle: %v", ErrInternal, err)
	}

	reservations, err := s.reservationRepo.List(ctx, domain.ReservationFilter{
		VehicleID: &v.ID,
		Statuses:  domain.BlockingReservationStatuses,
		Ascending: true,
	})
	if err != nil {
		s.logger.Error("Get: failed to list reservations of vehicle=%s: %v", v.ID, err)
		return nil, fmt.Errorf("%w: Get - list reservations: %v", ErrInternal, err)
	}

	jobs, err := s.maintenanceRepo.List(ctx, domain.MaintenanceFilter{
		VehicleID: &v.ID,
		Statuses:  domain.BlockingMaintenanceStatuses,
		Ascending: true,
	})
	if err != nil {
		s.logger.Error("Get: failed to list maintenance of vehicle=%s: %v", v.ID, err)
		return nil, fmt.Errorf("%w: Get - list maintenance: %v", ErrInternal, err)
	}

	s.logger.Info("Get: token id=%s for vehicle=%s, %d reservations, %d jobs", t.ID, v.ID, len(reservations), len(jobs))
	return models.NewBookingPage(t, v, reservations, jobs), nil
}

// Submit создает запланированную работу по токену и помечает токен использованным.
// Обе записи выполняются в одной транзакции; окно проверяется на пересечения.
func (s *Service) Submit(ctx context.Context, token string, req *models.SubmitRequest) (*models.SubmitResponse, error) {
	var created *domain.MaintenanceJob
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		t, err := s.lookup(ctx, "Submit", token)
		if err != nil {
			return err
		}
		if t.Used && !s.allowResubmit {
			s.logger.Warn("Submit: token id=%s already used", t.ID)
			return ErrTokenUsed
		}

		if req.ScheduledDate == nil || req.ScheduledDate.IsZero() {
			return fmt.Errorf("%w: scheduled_date is required", ErrInvalidInput)
		}
		if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
			return fmt.Errorf("%w: description too long", ErrInvalidInput)
		}
		if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes too long", ErrInvalidInput)
		}

		cost := decimal.Zero
		job := &domain.MaintenanceJob{
			VehicleID:     t.VehicleID,
			Type:          domain.MaintenanceRoutine,
			Description:   fmt.Sprintf("%s - %s", domain.GarageBookingDescription, t.AlertRuleName),
			Status:        domain.MaintenanceScheduled,
			ScheduledDate: *req.ScheduledDate,
			Cost:          &cost,
			Notes:         req.Notes,
		}
		if req.Description != nil && *req.Description != "" {
			job.Description = *req.Description
		}

		rule, err := s.ruleRepo.GetByName(ctx, t.AlertRuleName)
		switch {
		case err == nil:
			job.RuleID = &rule.ID
		case errors.Is(err, ruleRepo.ErrRuleNotFound):
			// документные алерты не связаны с правилом
		default:
			return fmt.Errorf("%w: Submit - resolve rule: %v", ErrInternal, err)
		}

		created, err = s.scheduler.Schedule(ctx, job)
		if err != nil {
			return err
		}

		if err := s.tokenRepo.MarkUsed(ctx, t.ID); err != nil {
			return fmt.Errorf("%w: Submit - mark token used: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.translate(err)
	}

	s.logger.Info("Submit: maintenance id=%s scheduled at %s", created.ID, created.ScheduledDate.Format(time.RFC3339))
	return &models.SubmitResponse{
		Message:     submittedMessage,
		Maintenance: maintenanceModels.FromDomainMaintenance(created),
	}, nil
}

// lookup находит токен и проверяет срок действия независимо от признака used
func (s *Service) lookup(ctx context.Context, op, token string) (*domain.GarageBookingToken, error) {
	if token == "" {
		return nil, ErrTokenNotFound
	}

	t, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			s.logger.Warn("%s: unknown token", op)
			return nil, ErrTokenNotFound
		}
		s.logger.Error("%s: failed to get token: %v", op, err)
		return nil, fmt.Errorf("%w: %s - get token: %v", ErrInternal, op, err)
	}

	if t.IsExpired(s.now()) {
		s.logger.Warn("%s: token id=%s expired at %s", op, t.ID, t.ExpiresAt.Format(time.RFC3339))
		return nil, ErrTokenExpired
	}
	return t, nil
}

func (s *Service) translate(err error) error {
	switch {
	case errors.Is(err, availability.ErrConflict):
		s.logger.Warn("Submit: rejected: %v", err)
		return err
	case errors.Is(err, ErrTokenNotFound),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenUsed),
		errors.Is(err, ErrInvalidInput):
		return err
	case errors.Is(err, maintenanceService.ErrVehicleNotFound):
		s.logger.Warn("Submit: vehicle of token is gone")
		return ErrTokenNotFound
	case errors.Is(err, ErrInternal):
		s.logger.Error("Submit: %v", err)
		return err
	default:
		s.logger.Error("Submit: %v", err)
		return fmt.Errorf("%w: Submit: %v", ErrInternal, err)
	}
}
