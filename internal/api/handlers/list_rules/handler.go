package list_rules

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/maintenance-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /maintenance-rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rules)
}
