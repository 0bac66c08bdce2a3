package return_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	returnVehicle "github.com/m04kA/SMC-FleetService/internal/usecase/return_vehicle"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные возврата"
	msgNotFound             = "бронирование не найдено"
	msgVehicleNotFound      = "автомобиль не найден"
	msgInvalidTransition    = "бронирование нельзя завершить в текущем статусе"
	msgReturnTooEarly       = "бронирование еще не закончилось"
	msgMileageDecrease      = "итоговый пробег меньше текущего пробега автомобиля"
	msgReturned             = "Vehicle returned successfully"
)

type Handler struct {
	useCase ReturnVehicleUseCase
	logger  Logger
}

func NewHandler(useCase ReturnVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations/{id}/return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/return - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req ReturnVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/return - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		switch {
		case errors.Is(err, returnVehicle.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/return - Reservation not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, returnVehicle.ErrVehicleNotFound):
			h.logger.Warn("POST /reservations/{id}/return - Vehicle not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, returnVehicle.ErrInvalidTransition):
			h.logger.Warn("POST /reservations/{id}/return - Invalid status: reservation_id=%s", id)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, returnVehicle.ErrReturnTooEarly):
			h.logger.Warn("POST /reservations/{id}/return - Too early: reservation_id=%s", id)
			handlers.RespondUnprocessable(w, msgReturnTooEarly)

		case errors.Is(err, returnVehicle.ErrMileageDecrease):
			h.logger.Warn("POST /reservations/{id}/return - Mileage decrease: reservation_id=%s, mileage=%d", id, req.Mileage)
			handlers.RespondUnprocessable(w, msgMileageDecrease)

		case errors.Is(err, returnVehicle.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/return - Invalid input: reservation_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/return - Failed to return vehicle: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/return - Vehicle returned: reservation_id=%s, vehicle_id=%s, mileage=%d",
		id, result.VehicleID, result.Mileage)
	handlers.RespondJSON(w, http.StatusOK, NewReturnVehicleResponse(msgReturned, result))
}
