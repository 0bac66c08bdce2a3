package submit_garage_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/garagebooking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLink        = "Lien invalide ou expiré."
	msgExpiredLink        = "Ce lien a expiré."
	msgUsedLink           = "Ce lien a déjà été utilisé."
	msgDateRequired       = "La date est requise."
	msgInvalidInput       = "Données de rendez-vous invalides."
)

type Handler struct {
	service GarageBookingService
	logger  Logger
}

func NewHandler(service GarageBookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/garage-booking/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req SubmitGarageBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /garage-booking/{token} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /garage-booking/{token} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	result, err := h.service.Submit(r.Context(), token, serviceReq)
	if err != nil {
		if kind, ok := availability.AsConflict(err); ok {
			h.logger.Warn("POST /garage-booking/{token} - Conflict with %s", kind)
			handlers.RespondConflict(w, kind)
			return
		}

		switch {
		case errors.Is(err, garagebooking.ErrTokenNotFound):
			h.logger.Warn("POST /garage-booking/{token} - Unknown token")
			handlers.RespondNotFound(w, msgInvalidLink)

		case errors.Is(err, garagebooking.ErrTokenExpired):
			h.logger.Warn("POST /garage-booking/{token} - Expired token")
			handlers.RespondGone(w, msgExpiredLink)

		case errors.Is(err, garagebooking.ErrTokenUsed):
			h.logger.Warn("POST /garage-booking/{token} - Token already used")
			handlers.RespondError(w, http.StatusConflict, msgUsedLink)

		case errors.Is(err, garagebooking.ErrInvalidInput):
			h.logger.Warn("POST /garage-booking/{token} - Invalid input: %v", err)
			if serviceReq.ScheduledDate == nil {
				handlers.RespondBadRequest(w, msgDateRequired)
			} else {
				handlers.RespondBadRequest(w, msgInvalidInput)
			}

		default:
			h.logger.Error("POST /garage-booking/{token} - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /garage-booking/{token} - Booking submitted: maintenance_id=%s", result.Maintenance.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
