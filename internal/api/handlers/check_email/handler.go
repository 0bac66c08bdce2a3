package check_email

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/profiles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный email"
)

// CheckEmailRequest HTTP request model
type CheckEmailRequest struct {
	Email string `json:"email"`
}

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

// Handle POST /api/check-email
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckEmailRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /check-email - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.CheckEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, profiles.ErrInvalidInput) {
			h.logger.Warn("POST /check-email - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)
			return
		}
		h.logger.Error("POST /check-email - Failed to check email: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
