package mark_notifications_read

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

const msgInvalidUserID = "некорректный ID пользователя"

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/reservations/notifications/{userId}/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathUUID(r, "userId")
	if err != nil {
		h.logger.Warn("PUT /reservations/notifications/{userId}/read - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.MarkRead(r.Context(), userID)
	if err != nil {
		h.logger.Error("PUT /reservations/notifications/{userId}/read - Failed to mark read: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /reservations/notifications/{userId}/read - Marked read: user_id=%s, updated=%d", userID, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, result)
}
