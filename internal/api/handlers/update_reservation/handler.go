package update_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты"
	msgInvalidInput         = "некорректные данные бронирования"
	msgNotFound             = "бронирование не найдено"
	msgVehicleNotFound      = "автомобиль не найден"
	msgVehicleAssigned      = "автомобиль закреплен за другим пользователем"
	msgInvalidTransition    = "недопустимая смена статуса бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	reservation, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		if kind, ok := availability.AsConflict(err); ok {
			h.logger.Warn("PUT /reservations/{id} - Conflict with %s: reservation_id=%s", kind, id)
			handlers.RespondConflict(w, kind)
			return
		}

		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrVehicleNotFound):
			h.logger.Warn("PUT /reservations/{id} - Vehicle not found: reservation_id=%s", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			h.logger.Warn("PUT /reservations/{id} - Invalid transition: reservation_id=%s, error=%v", id, err)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrVehicleAssigned):
			h.logger.Warn("PUT /reservations/{id} - Vehicle assigned to another user: reservation_id=%s", id)
			handlers.RespondUnprocessable(w, msgVehicleAssigned)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: reservation_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: reservation_id=%s, status=%s", id, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
