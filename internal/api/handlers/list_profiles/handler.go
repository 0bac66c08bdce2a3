package list_profiles

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/profiles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /profiles - Failed to list profiles: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /profiles - Profiles retrieved: count=%d", len(profiles))
	handlers.RespondJSON(w, http.StatusOK, profiles)
}
