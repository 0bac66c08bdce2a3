package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/reservation"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/reservations/models"
)

// Service сервис жизненного цикла бронирований
type Service struct {
	reservationRepo ReservationRepository
	vehicleRepo     VehicleRepository
	checker         ConflictChecker
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	vehicleRepo VehicleRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		checker:         checker,
		txManager:       txManager,
		logger:          logger,
	}
}

// Create создает бронирование в статусе pending.
// Проверка пересечений и вставка выполняются в одной serializable транзакции
// под блокировкой строки автомобиля.
func (s *Service) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Create: vehicle=%s, user=%s, window=%s..%s",
		req.VehicleID, req.UserID, req.StartDate.Format(time.RFC3339), req.EndDate.Format(time.RFC3339))

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		vehicle, err := s.vehicleRepo.LockByID(ctx, req.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			return fmt.Errorf("%w: Create - lock vehicle: %v", ErrInternal, err)
		}

		if !vehicle.CanBeReservedBy(req.UserID) {
			return ErrVehicleAssigned
		}

		if err := s.checker.EnsureFree(ctx, vehicle.ID, req.StartDate, req.EndDate, nil); err != nil {
			return err
		}

		created, err = s.reservationRepo.Create(ctx, &domain.Reservation{
			VehicleID:     req.VehicleID,
			UserID:        req.UserID,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			Status:        domain.ReservationPending,
			Purpose:       req.Purpose,
			StartLocation: req.StartLocation,
			EndLocation:   req.EndLocation,
			Notes:         req.Notes,
			UserNotified:  true,
		})
		if err != nil {
			return fmt.Errorf("%w: Create - insert reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.translate("Create", err)
	}

	s.logger.Info("Create: reservation id=%s created", created.ID)
	return models.FromDomainReservation(created), nil
}

// Update частично обновляет бронирование. Если меняется автомобиль или окно,
// новое окно заново проверяется на пересечения без учета самой записи.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: reservation id=%s", id)

	var nextStatus *domain.ReservationStatus
	if req.Status != nil {
		status := domain.ReservationStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("Update: invalid status=%s for reservation id=%s", *req.Status, id)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		nextStatus = &status
	}

	var updated *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		res, err := s.reservationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - get reservation: %v", ErrInternal, err)
		}

		if nextStatus != nil {
			if !res.Status.CanTransitionTo(*nextStatus) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, *nextStatus)
			}
			if *nextStatus != res.Status && (*nextStatus == domain.ReservationApproved || *nextStatus == domain.ReservationCancelled) {
				res.UserNotified = false
			}
			res.Status = *nextStatus
		}

		if req.TouchesInterval() {
			if req.VehicleID != nil {
				res.VehicleID = *req.VehicleID
			}
			if req.StartDate != nil {
				res.StartDate = *req.StartDate
			}
			if req.EndDate != nil {
				res.EndDate = *req.EndDate
			}
			if !res.StartDate.Before(res.EndDate) {
				return fmt.Errorf("%w: start_date must be before end_date", ErrInvalidInput)
			}

			if res.Status.IsBlocking() {
				vehicle, err := s.vehicleRepo.LockByID(ctx, res.VehicleID)
				if err != nil {
					if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
						return ErrVehicleNotFound
					}
					return fmt.Errorf("%w: Update - lock vehicle: %v", ErrInternal, err)
				}
				if !vehicle.CanBeReservedBy(res.UserID) {
					return ErrVehicleAssigned
				}

				if err := s.checker.EnsureFree(ctx, res.VehicleID, res.StartDate, res.EndDate, &res.ID); err != nil {
					return err
				}
			}
		}

		if req.Purpose != nil {
			res.Purpose = req.Purpose
		}
		if req.StartLocation != nil {
			res.StartLocation = req.StartLocation
		}
		if req.EndLocation != nil {
			res.EndLocation = req.EndLocation
		}
		if req.Notes != nil {
			res.Notes = req.Notes
		}

		updated, err = s.reservationRepo.Update(ctx, res)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Update - save reservation: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.translate("Update", err)
	}

	s.logger.Info("Update: reservation id=%s updated, status=%s", id, updated.Status)
	return models.FromDomainReservation(updated), nil
}

// Delete удаляет бронирование независимо от статуса
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: reservation id=%s", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}

// List возвращает все бронирования с данными автомобилей, от новых к старым
func (s *Service) List(ctx context.Context) ([]*models.ReservationResponse, error) {
	return s.list(ctx, "List", domain.ReservationFilter{})
}

// ListByVehicle возвращает бронирования автомобиля
func (s *Service) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*models.ReservationResponse, error) {
	return s.list(ctx, "ListByVehicle", domain.ReservationFilter{VehicleID: &vehicleID})
}

// ListByUser возвращает бронирования пользователя
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.ReservationResponse, error) {
	return s.list(ctx, "ListByUser", domain.ReservationFilter{UserID: &userID})
}

func (s *Service) list(ctx context.Context, op string, filter domain.ReservationFilter) ([]*models.ReservationResponse, error) {
	s.logger.Info("%s: fetching reservations", op)

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - list reservations: %v", ErrInternal, op, err)
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

	s.logger.Info("%s: fetched %d reservations", op, len(list))
	return models.FromDomainReservationList(list, byID), nil
}

// UnreadCount возвращает количество непрочитанных изменений статуса у пользователя
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (*models.UnreadCountResponse, error) {
	count, err := s.reservationRepo.CountUnnotified(ctx, userID)
	if err != nil {
		s.logger.Error("UnreadCount: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: UnreadCount - repository error: %v", ErrInternal, err)
	}
	return &models.UnreadCountResponse{Count: count}, nil
}

// MarkRead отмечает все изменения статуса пользователя как прочитанные
func (s *Service) MarkRead(ctx context.Context, userID uuid.UUID) (*models.MarkReadResponse, error) {
	updated, err := s.reservationRepo.MarkNotified(ctx, userID)
	if err != nil {
		s.logger.Error("MarkRead: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: MarkRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkRead: marked %d reservations as read for user=%s", updated, userID)
	return &models.MarkReadResponse{Updated: updated}, nil
}

// translate логирует ошибку транзакции и приводит её к ошибкам сервиса.
// Ошибки пересечения возвращаются как есть, чтобы сохранить вид конфликта.
func (s *Service) translate(op string, err error) error {
	switch {
	case errors.Is(err, availability.ErrConflict):
		s.logger.Warn("%s: rejected: %v", op, err)
		return err
	case errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrVehicleNotFound),
		errors.Is(err, ErrVehicleAssigned),
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

func validateCreate(req *models.CreateReservationRequest) error {
	if req.VehicleID == uuid.Nil {
		return fmt.Errorf("%w: vehicle_id is required", ErrInvalidInput)
	}
	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", ErrInvalidInput)
	}
	if !req.StartDate.Before(req.EndDate) {
		return fmt.Errorf("%w: start_date must be before end_date", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}
	return nil
}
