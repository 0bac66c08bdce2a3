package get_garage_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FleetService/internal/service/garagebooking"
	"github.com/m04kA/SMC-FleetService/internal/service/garagebooking/models"
)

type stubService struct {
	page *models.BookingPageResponse
	err  error
}

func (s stubService) Get(context.Context, string) (*models.BookingPageResponse, error) {
	return s.page, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		svc    stubService
		status int
	}{
		{name: "unknown", svc: stubService{err: garagebooking.ErrTokenNotFound}, status: http.StatusNotFound},
		{name: "expired", svc: stubService{err: garagebooking.ErrTokenExpired}, status: http.StatusGone},
		{name: "internal", svc: stubService{err: garagebooking.ErrInternal}, status: http.StatusInternalServerError},
		{name: "ok", svc: stubService{page: &models.BookingPageResponse{
			Reservations: []models.BusyReservation{},
			Maintenance:  []models.BusyMaintenance{},
		}}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.svc, nopLogger{})
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/garage-booking/abc", nil),
				map[string]string{"token": "abc"})

			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
