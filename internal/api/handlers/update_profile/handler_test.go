package update_profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FleetService/internal/service/profiles"
	"github.com/m04kA/SMC-FleetService/internal/service/profiles/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfileResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRequest(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/profiles/"+id, strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"userId": id})
}

func TestHandle(t *testing.T) {
	id := uuid.New()

	t.Run("updated", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Update", mock.Anything, id, mock.MatchedBy(func(r *models.UpdateProfileRequest) bool {
			return r.FullName != nil && *r.FullName == "Alice Dupont" && r.Email == nil
		})).Return(&models.ProfileResponse{ID: id.String(), Role: "user"}, nil)
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest(id.String(), `{"full_name":"Alice Dupont"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), id.String())
	})

	t.Run("service errors", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
		}{
			{name: "invalid input", err: profiles.ErrInvalidInput, status: http.StatusBadRequest},
			{name: "not found", err: profiles.ErrProfileNotFound, status: http.StatusNotFound},
			{name: "email taken", err: profiles.ErrEmailTaken, status: http.StatusConflict},
			{name: "internal", err: profiles.ErrInternal, status: http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(mockService)
				svc.On("Update", mock.Anything, id, mock.Anything).Return(nil, tt.err)
				h := NewHandler(svc, nopLogger{})

				rec := httptest.NewRecorder()
				h.Handle(rec, newRequest(id.String(), `{"email":"bob@example.com"}`))

				assert.Equal(t, tt.status, rec.Code)
			})
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := new(mockService)
		h := NewHandler(svc, nopLogger{})

		rec := httptest.NewRecorder()
		h.Handle(rec, newRequest("me", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}
