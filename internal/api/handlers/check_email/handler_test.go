package check_email

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FleetService/internal/service/profiles"
	"github.com/m04kA/SMC-FleetService/internal/service/profiles/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CheckEmail(ctx context.Context, email string) (*models.CheckEmailResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckEmailResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CheckEmail", mock.Anything, "alice@example.com").Return(&models.CheckEmailResponse{Exists: true}, nil)
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/check-email", strings.NewReader(`{"email":"alice@example.com"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"exists":true}`, rec.Body.String())
	})

	t.Run("malformed email", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CheckEmail", mock.Anything, "alice").Return(nil, profiles.ErrInvalidInput)
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/check-email", strings.NewReader(`{"email":"alice"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc := new(mockService)
		svc.On("CheckEmail", mock.Anything, mock.Anything).Return(nil, profiles.ErrInternal)
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/check-email", strings.NewReader(`{"email":"a@b.io"}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
