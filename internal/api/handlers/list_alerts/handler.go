package list_alerts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/alerts"
)

const (
	msgInvalidVehicleID = "некорректный ID автомобиля"
	msgVehicleNotFound  = "автомобиль не найден"
)

type Handler struct {
	service AlertService
	logger  Logger
}

func NewHandler(service AlertService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/maintenance-alerts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.All(r.Context())
	if err != nil {
		h.logger.Error("GET /maintenance-alerts - Failed to compute alerts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /maintenance-alerts - Alerts computed: total=%d", list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}

// HandleByVehicle GET /api/maintenance-alerts/vehicle/{id}
func (h *Handler) HandleByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /maintenance-alerts/vehicle/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	list, err := h.service.ForVehicle(r.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, alerts.ErrVehicleNotFound) {
			h.logger.Warn("GET /maintenance-alerts/vehicle/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)
			return
		}
		h.logger.Error("GET /maintenance-alerts/vehicle/{id} - Failed to compute alerts: vehicle_id=%s, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /maintenance-alerts/vehicle/{id} - Alerts computed: vehicle_id=%s, total=%d", vehicleID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
