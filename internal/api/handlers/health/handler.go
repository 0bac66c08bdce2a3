package health

import (
	"net/http"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
)

// Response ответ проверки доступности
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct {
	appName string
}

func NewHandler(appName string) *Handler {
	return &Handler{appName: appName}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Message: h.appName + " API"})
}
