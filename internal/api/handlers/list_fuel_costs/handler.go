package list_fuel_costs

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

const msgInvalidVehicleID = "некорректный ID автомобиля"

type Handler struct {
	service FuelCostService
	logger  Logger
}

func NewHandler(service FuelCostService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/fuel-costs/vehicle/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /fuel-costs/vehicle/{id} - Invalid vehicle ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	costs, err := h.service.ListByVehicle(r.Context(), vehicleID)
	if err != nil {
		h.logger.Error("GET /fuel-costs/vehicle/{id} - Failed to list fuel costs: vehicle_id=%s, error=%v", vehicleID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, costs)
}
