package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	createVehicle "github.com/m04kA/SMC-FleetService/internal/usecase/create_vehicle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные автомобиля"
)

type Handler struct {
	useCase CreateVehicleUseCase
	logger  Logger
}

func NewHandler(useCase CreateVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /vehicles - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	vehicle, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, createVehicle.ErrInvalidInput) {
			h.logger.Warn("POST /vehicles - Invalid input: plate=%s, error=%v", req.LicensePlate, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /vehicles - Failed to create vehicle: plate=%s, error=%v", req.LicensePlate, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created: vehicle_id=%s, plate=%s, up_to_date=%t",
		vehicle.ID, vehicle.LicensePlate, req.MaintenanceUpToDate)
	handlers.RespondJSON(w, http.StatusCreated, vehicle)
}
