package list_maintenance

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

const msgInvalidVehicleID = "некорректный ID автомобиля"

type Handler struct {
	service MaintenanceService
	logger  Logger
}

func NewHandler(service MaintenanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /maintenance - Failed to list maintenance: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /maintenance - Maintenance retrieved: count=%d", len(jobs))
	handlers.RespondJSON(w, http.StatusOK, jobs)
}

// HandleByVehicle GET /api/maintenance/vehicle/{id}
func (h *Handler) HandleByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /maintenance/vehicle/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	jobs, err := h.service.ListByVehicle(r.Context(), vehicleID)
	if err != nil {
		h.logger.Error("GET /maintenance/vehicle/{id} - Failed to list maintenance: vehicle_id=%s, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /maintenance/vehicle/{id} - Maintenance retrieved: vehicle_id=%s, count=%d", vehicleID, len(jobs))
	handlers.RespondJSON(w, http.StatusOK, jobs)
}
