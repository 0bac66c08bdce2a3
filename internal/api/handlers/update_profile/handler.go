package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/profiles"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные профиля"
	msgNotFound           = "профиль не найден"
	msgEmailTaken         = "email уже используется"
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

// Handle PUT /api/profiles/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "userId")
	if err != nil {
		h.logger.Warn("PUT /profiles/{userId} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profiles/{userId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	profile, err := h.service.Update(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, profiles.ErrInvalidInput):
			h.logger.Warn("PUT /profiles/{userId} - Invalid input: user_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, profiles.ErrProfileNotFound):
			h.logger.Warn("PUT /profiles/{userId} - Profile not found: user_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, profiles.ErrEmailTaken):
			h.logger.Warn("PUT /profiles/{userId} - Email already used: user_id=%s", id)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("PUT /profiles/{userId} - Failed to update profile: user_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profiles/{userId} - Profile updated: user_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
