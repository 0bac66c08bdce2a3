package delete_fuel_cost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func request(id string) *http.Request {
	r := httptest.NewRequest(http.MethodDelete, "/api/fuel-costs/"+id, nil)
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestHandle(t *testing.T) {
	id := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Delete", mock.Anything, id).Return(nil)

		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Handle(rec, request(id.String()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Delete", mock.Anything, id).Return(fuelcosts.ErrFuelCostNotFound)

		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Handle(rec, request(id.String()))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		svc := new(mockService)

		rec := httptest.NewRecorder()
		NewHandler(svc, nopLogger{}).Handle(rec, request("7"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
