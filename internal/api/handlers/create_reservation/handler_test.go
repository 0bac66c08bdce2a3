package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/api/handlers"
	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/availability"
	"github.com/m04kA/SMC-FleetService/internal/service/reservations"
	"github.com/m04kA/SMC-FleetService/internal/service/reservations/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReservationResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func body(vehicleID uuid.UUID) string {
	return `{"vehicle_id":"` + vehicleID.String() + `","user_id":"` + uuid.NewString() +
		`","start_date":"2024-06-01T13:00:00Z","end_date":"2024-06-01T18:00:00Z"}`
}

func TestHandle(t *testing.T) {
	vehicleID := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(r *models.CreateReservationRequest) bool {
			return r.VehicleID == vehicleID && r.StartDate.Hour() == 13
		})).Return(&models.ReservationResponse{ID: uuid.NewString(), Status: "pending"}, nil)
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body(vehicleID))))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"pending"`)
	})

	t.Run("local datetime without offset", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(r *models.CreateReservationRequest) bool {
			return r.StartDate.Hour() == 13 && r.EndDate.Hour() == 18
		})).Return(&models.ReservationResponse{ID: uuid.NewString(), Status: "pending"}, nil)
		h := NewHandler(svc, nopLogger{})

		req := `{"vehicle_id":"` + vehicleID.String() + `","user_id":"` + uuid.NewString() +
			`","start_date":"2024-06-01T13:00","end_date":"2024-06-01T18:00"}`
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(req)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unparseable date", func(t *testing.T) {
		svc := new(mockService)
		h := NewHandler(svc, nopLogger{})

		req := `{"vehicle_id":"` + vehicleID.String() + `","user_id":"` + uuid.NewString() +
			`","start_date":"01/06/2024","end_date":"2024-06-01T18:00"}`
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(req)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("overlap with reservation", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, &availability.ConflictError{Kind: domain.ConflictReservation})
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body(vehicleID))))

		require.Equal(t, http.StatusConflict, rec.Code)
		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "reservation", resp.Conflict)
		assert.Equal(t, "Ce véhicule est déjà réservé pour cette période.", resp.Error)
	})

	t.Run("overlap with maintenance", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, &availability.ConflictError{Kind: domain.ConflictMaintenance})
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body(vehicleID))))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"conflict":"maintenance"`)
	})

	t.Run("service errors", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{name: "invalid input", err: reservations.ErrInvalidInput, status: http.StatusBadRequest},
			{name: "vehicle not found", err: reservations.ErrVehicleNotFound, status: http.StatusNotFound},
			{name: "vehicle assigned", err: reservations.ErrVehicleAssigned, status: http.StatusUnprocessableEntity},
			{name: "internal", err: reservations.ErrInternal, status: http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(mockService)
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)
				h := NewHandler(svc, nopLogger{})

				rec := httptest.NewRecorder()
				h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body(vehicleID))))

				assert.Equal(t, tt.status, rec.Code)
			})
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockService)
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(`{"vehicle_id":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
