package list_vehicles

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
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

// Handle GET /api/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /vehicles - Vehicles retrieved: count=%d", len(vehicles))
	handlers.RespondJSON(w, http.StatusOK, vehicles)
}
