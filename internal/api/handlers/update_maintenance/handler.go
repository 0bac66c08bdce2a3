package update_maintenance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/maintenance"
)

const (
	msgInvalidMaintenanceID = "некорректный ID обслуживания"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput         = "некорректные данные обслуживания"
	msgNotFound             = "обслуживание не найдено"
	msgVehicleNotFound      = "автомобиль не найден"
	msgInvalidTransition    = "недопустимая смена статуса обслуживания"
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

// Handle PUT /api/maintenance/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /maintenance/{id} - Invalid maintenance ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMaintenanceID)
		return
	}

	var req UpdateMaintenanceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /maintenance/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /maintenance/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	job, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		if kind, ok := availability.AsConflict(err); ok {
			h.logger.Warn("PUT /maintenance/{id} - Conflict with %s: maintenance_id=%s", kind, id)
			handlers.RespondConflict(w, kind)
			return
		}

		switch {
		case errors.Is(err, maintenance.ErrMaintenanceNotFound):
			h.logger.Warn("PUT /maintenance/{id} - Maintenance not found: maintenance_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, maintenance.ErrVehicleNotFound):
			h.logger.Warn("PUT /maintenance/{id} - Vehicle not found: maintenance_id=%s", id)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, maintenance.ErrInvalidTransition):
			h.logger.Warn("PUT /maintenance/{id} - Invalid transition: maintenance_id=%s, error=%v", id, err)
			handlers.RespondUnprocessable(w, msgInvalidTransition)

		case errors.Is(err, maintenance.ErrInvalidInput):
			h.logger.Warn("PUT /maintenance/{id} - Invalid input: maintenance_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /maintenance/{id} - Failed to update maintenance: maintenance_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /maintenance/{id} - Maintenance updated: maintenance_id=%s, status=%s", id, job.Status)
	handlers.RespondJSON(w, http.StatusOK, job)
}
