package delete_fuel_cost

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts"
)

const (
	msgInvalidFuelCostID = "некорректный ID заправки"
	msgNotFound          = "заправка не найдена"
)

// SuccessResponse HTTP response model
type SuccessResponse struct {
	Success bool `json:"success"`
}

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

// Handle DELETE /api/fuel-costs/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /fuel-costs/{id} - Invalid fuel cost ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFuelCostID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, fuelcosts.ErrFuelCostNotFound) {
			h.logger.Warn("DELETE /fuel-costs/{id} - Fuel cost not found: fuel_cost_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /fuel-costs/{id} - Failed to delete fuel cost: fuel_cost_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /fuel-costs/{id} - Fuel cost deleted: fuel_cost_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
