package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgInvalidUserID    = "некорректный ID пользователя"
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

// Handle GET /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleByVehicle GET /api/reservations/vehicle/{id}
func (h *Handler) HandleByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /reservations/vehicle/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	list, err := h.service.ListByVehicle(r.Context(), vehicleID)
	if err != nil {
		h.logger.Error("GET /reservations/vehicle/{id} - Failed to list reservations: vehicle_id=%s, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/vehicle/{id} - Reservations retrieved: vehicle_id=%s, count=%d", vehicleID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleByUser GET /api/reservations/user/{id}
func (h *Handler) HandleByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /reservations/user/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	list, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /reservations/user/{id} - Failed to list reservations: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/user/{id} - Reservations retrieved: user_id=%s, count=%d", userID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
