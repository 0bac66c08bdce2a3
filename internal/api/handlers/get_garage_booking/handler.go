package get_garage_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/garagebooking"
)

const (
	msgInvalidLink = "Lien invalide ou expiré."
	msgExpiredLink = "Ce lien a expiré."
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

// Handle GET /api/garage-booking/{token}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	page, err := h.service.Get(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, garagebooking.ErrTokenNotFound):
			h.logger.Warn("GET /garage-booking/{token} - Unknown token")
			handlers.RespondNotFound(w, msgInvalidLink)

		case errors.Is(err, garagebooking.ErrTokenExpired):
			h.logger.Warn("GET /garage-booking/{token} - Expired token")
			handlers.RespondGone(w, msgExpiredLink)

		default:
			h.logger.Error("GET /garage-booking/{token} - Failed to load booking page: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /garage-booking/{token} - Booking page served: vehicle_id=%s", page.Vehicle.ID)
	handlers.RespondJSON(w, http.StatusOK, page)
}
