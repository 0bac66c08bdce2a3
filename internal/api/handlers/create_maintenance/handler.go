package create_maintenance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/maintenance"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные обслуживания"
	msgVehicleNotFound    = "автомобиль не найден"
)

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

// Handle POST /api/maintenance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /maintenance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /maintenance - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	job, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		if kind, ok := availability.AsConflict(err); ok {
			h.logger.Warn("POST /maintenance - Conflict with %s: vehicle_id=%s", kind, req.VehicleID)
			handlers.RespondConflict(w, kind)
			return
		}

		switch {
		case errors.Is(err, maintenance.ErrVehicleNotFound):
			h.logger.Warn("POST /maintenance - Vehicle not found: vehicle_id=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("POST /maintenance - Invalid input: vehicle_id=%s, error=%v", req.VehicleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /maintenance - Failed to create maintenance: vehicle_id=%s, error=%v", req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /maintenance - Maintenance created: maintenance_id=%s, vehicle_id=%s, status=%s",
		job.ID, req.VehicleID, job.Status)
	handlers.RespondJSON(w, http.StatusCreated, job)
}
