package create_fuel_cost

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заправки"
	msgVehicleNotFound    = "автомобиль не найден"
)

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

// Handle POST /api/fuel-costs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateFuelCostRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /fuel-costs - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /fuel-costs - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	cost, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, fuelcosts.ErrVehicleNotFound):
			h.logger.Warn("POST /fuel-costs - Vehicle not found: vehicle_id=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, fuelcosts.ErrInvalidInput):
			h.logger.Warn("POST /fuel-costs - Invalid input: vehicle_id=%s, error=%v", req.VehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /fuel-costs - Failed to create fuel cost: vehicle_id=%s, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /fuel-costs - Fuel cost created: fuel_cost_id=%s, vehicle_id=%s", cost.ID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, cost)
}
