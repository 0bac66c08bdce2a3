package return_vehicle

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/reservation"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
)

// UseCase use case возврата автомобиля по завершении бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	vehicleRepo     VehicleRepository
	maintenanceRepo MaintenanceRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	vehicleRepo VehicleRepository,
	maintenanceRepo MaintenanceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет возврат автомобиля.
// Все записи (автомобиль, бронирование, заявка на ремонт) выполняются
// в одной сериализуемой транзакции: либо все, либо ни одной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReturnVehicle: reservation=%s, mileage=%d, incident=%t",
		req.ReservationID, req.Mileage, req.HasIncident)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReturnVehicle: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var resp *Response

	// 2. Выполняем все записи в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Бронирование блокируется до конца транзакции
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ReturnVehicle: reservation=%s not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("ReturnVehicle: failed to get reservation=%s: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Проверяем статус и окончание бронирования
		if !res.Status.CanBeReturned() {
			uc.logger.Warn("ReturnVehicle: reservation=%s has status=%s", res.ID, res.Status)
			return fmt.Errorf("%w: status %s", ErrInvalidTransition, res.Status)
		}
		if now.Before(res.EndDate) {
			uc.logger.Warn("ReturnVehicle: reservation=%s ends at %s", res.ID, res.EndDate.Format(domain.DateFormat))
			return ErrReturnTooEarly
		}

		// 2.3. Пробег не может уменьшаться
		vehicle, err := uc.vehicleRepo.LockByID(txCtx, res.VehicleID)
		if err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				return ErrVehicleNotFound
			}
			uc.logger.Error("ReturnVehicle: failed to lock vehicle=%s: %v", res.VehicleID, err)
			return fmt.Errorf("%w: failed to lock vehicle: %v", ErrInternal, err)
		}
		if req.Mileage < vehicle.Mileage {
			uc.logger.Warn("ReturnVehicle: mileage %d is below vehicle mileage %d", req.Mileage, vehicle.Mileage)
			return fmt.Errorf("%w: %d < %d", ErrMileageDecrease, req.Mileage, vehicle.Mileage)
		}

		// 2.4. Автомобиль снова доступен с новым пробегом
		if err := uc.vehicleRepo.SetMileageAndStatus(txCtx, vehicle.ID, req.Mileage, domain.VehicleAvailable); err != nil {
			uc.logger.Error("ReturnVehicle: failed to update vehicle=%s: %v", vehicle.ID, err)
			return fmt.Errorf("%w: failed to update vehicle: %v", ErrInternal, err)
		}

		// 2.5. Завершаем бронирование: структурные поля + строка в заметках
		note := returnNote(req)
		notes := appendNote(res.Notes, note)
		mileage := req.Mileage

		res.Notes = &notes
		res.EndMileage = &mileage
		res.FuelLevel = req.FuelLevel
		res.BatteryLevel = req.BatteryLevel
		res.HasIncident = req.HasIncident
		res.IncidentDescription = req.IncidentDescription
		res.FuelCost = req.FuelCost
		res.ParkingCost = req.ParkingCost
		res.TollCost = req.TollCost
		res.ReturnedAt = &now

		if err := uc.reservationRepo.Complete(txCtx, res); err != nil {
			uc.logger.Error("ReturnVehicle: failed to complete reservation=%s: %v", res.ID, err)
			return fmt.Errorf("%w: failed to complete reservation: %v", ErrInternal, err)
		}

		resp = &Response{
			ReservationID: res.ID,
			VehicleID:     vehicle.ID,
			Mileage:       req.Mileage,
			Notes:         note,
		}

		// 2.6. Заявка на ремонт при проблемах
		if req.HasIncident {
			job, err := uc.maintenanceRepo.Create(txCtx, &domain.MaintenanceJob{
				VehicleID:        vehicle.ID,
				Type:             domain.MaintenanceRepair,
				Description:      fmt.Sprintf("%s: %s", incidentJobDescription, incidentText(req)),
				Status:           domain.MaintenanceScheduled,
				ScheduledDate:    now,
				MileageAtService: &mileage,
			})
			if err != nil {
				uc.logger.Error("ReturnVehicle: failed to create repair job for vehicle=%s: %v", vehicle.ID, err)
				return fmt.Errorf("%w: failed to create repair job: %v", ErrInternal, err)
			}
			resp.RepairJobID = &job.ID
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReturnVehicle: reservation=%s completed, vehicle=%s mileage=%d", resp.ReservationID, resp.VehicleID, resp.Mileage)
	return resp, nil
}
