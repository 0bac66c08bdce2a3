package notify_alerts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FleetService/internal/service/notifications"
	"github.com/m04kA/SMC-FleetService/internal/service/notifications/models"
)

type stubNotifier struct {
	resp *models.NotifyResponse
	err  error
}

func (s stubNotifier) NotifyNow(context.Context) (*models.NotifyResponse, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_NoRecipients(t *testing.T) {
	h := NewHandler(stubNotifier{err: notifications.ErrNoRecipients}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/maintenance-alerts/notify", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Aucune adresse email configurée."}`, rec.Body.String())
}

func TestHandle_Sent(t *testing.T) {
	h := NewHandler(stubNotifier{resp: &models.NotifyResponse{
		Message:    "Notifications envoyées à 2 destinataire(s).",
		Sent:       true,
		AlertCount: 3,
	}}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/maintenance-alerts/notify", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Notifications envoyées à 2 destinataire(s).","sent":true,"alert_count":3}`, rec.Body.String())
}
