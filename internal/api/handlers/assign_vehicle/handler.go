package assign_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/vehicles"
)

const (
	msgInvalidVehicleID   = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "автомобиль не найден"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/vehicles/{id}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /vehicles/{id}/assign - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req AssignVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /vehicles/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.Assign(r.Context(), id, req.UserID)
	if err != nil {
		if errors.Is(err, vehicles.ErrVehicleNotFound) {
			h.logger.Warn("PUT /vehicles/{id}/assign - Vehicle not found: vehicle_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("PUT /vehicles/{id}/assign - Failed to assign vehicle: vehicle_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /vehicles/{id}/assign - Vehicle assignment changed: vehicle_id=%s, user_id=%v", id, req.UserID)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}
