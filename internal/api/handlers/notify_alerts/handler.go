package notify_alerts

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/service/notifications"
)

const msgNoRecipients = "Aucune adresse email configurée."

type Handler struct {
	notifier Notifier
	logger   Logger
}

func NewHandler(notifier Notifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle POST /api/maintenance-alerts/notify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.notifier.NotifyNow(r.Context())
	if err != nil {
		if errors.Is(err, notifications.ErrNoRecipients) {
			h.logger.Warn("POST /maintenance-alerts/notify - No recipients configured")
			handlers.RespondBadRequest(w, msgNoRecipients)
			return
		}
		h.logger.Error("POST /maintenance-alerts/notify - Failed to notify: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /maintenance-alerts/notify - Done: sent=%t, alerts=%d", result.Sent, result.AlertCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
