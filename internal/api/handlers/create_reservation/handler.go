package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты"
	msgInvalidInput       = "некорректные данные бронирования"
	msgVehicleNotFound    = "автомобиль не найден"
	msgVehicleAssigned    = "автомобиль закреплен за другим пользователем"
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

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	reservation, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		if kind, ok := availability.AsConflict(err); ok {
			h.logger.Warn("POST /reservations - Conflict with %s: vehicle_id=%s", kind, req.VehicleID)
			handlers.RespondConflict(w, kind)
			return
		}

		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: vehicle_id=%s, error=%v", req.VehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reservations.ErrVehicleNotFound):
			h.logger.Warn("POST /reservations - Vehicle not found: vehicle_id=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, reservations.ErrVehicleAssigned):
			h.logger.Warn("POST /reservations - Vehicle assigned to another user: vehicle_id=%s, user_id=%s",
				req.VehicleID, req.UserID)
			handlers.RespondUnprocessable(w, msgVehicleAssigned)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: vehicle_id=%s, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, vehicle_id=%s, user_id=%s",
		reservation.ID, req.VehicleID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, reservation)
}
