package alerts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
)

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) List(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

type mockRuleRepo struct {
	mock.Mock
}

func (m *mockRuleRepo) List(ctx context.Context, activeOnly bool) ([]*domain.MaintenanceRule, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MaintenanceRule), args.Error(1)
}

type mockMaintenanceRepo struct {
	mock.Mock
}

func (m *mockMaintenanceRepo) List(ctx context.Context, filter domain.MaintenanceFilter) ([]*domain.MaintenanceJob, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MaintenanceJob), args.Error(1)
}

type mockMetrics struct {
	last map[string]int
}

func (m *mockMetrics) SetAlerts(byPriority map[string]int) {
	m.last = byPriority
}

// readOnlyTx выполняет fn без транзакции и считает вызовы
type readOnlyTx struct {
	calls int
}

func (tx *readOnlyTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *mockVehicleRepo, *mockRuleRepo, *mockMaintenanceRepo, *mockMetrics) {
	vehicles := new(mockVehicleRepo)
	rules := new(mockRuleRepo)
	jobs := new(mockMaintenanceRepo)
	metrics := &mockMetrics{}

	s := NewService(vehicles, rules, jobs, &readOnlyTx{}, metrics, nopLogger{})
	s.now = func() time.Time { return now }
	return s, vehicles, rules, jobs, metrics
}

func TestService_All(t *testing.T) {
	s, vehicles, rules, jobs, metrics := newService()

	v1 := &domain.Vehicle{ID: uuid.New(), LicensePlate: "BB-222-BB", InsuranceExpiryDate: timePtr(now.AddDate(0, 0, 40))}
	v2 := &domain.Vehicle{ID: uuid.New(), LicensePlate: "AA-111-AA", FuelType: domain.FuelDiesel, Mileage: 60000}

	vehicles.On("List", mock.Anything).Return([]*domain.Vehicle{v1, v2}, nil)
	rules.On("List", mock.Anything, true).Return([]*domain.MaintenanceRule{kmRule()}, nil)
	jobs.On("List", mock.Anything, domain.MaintenanceFilter{
		Statuses: []domain.MaintenanceStatus{domain.MaintenanceCompleted},
	}).Return([]*domain.MaintenanceJob{}, nil)

	resp, err := s.All(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "urgent", resp.Alerts[0].Priority)
	assert.Equal(t, "AA-111-AA", resp.Alerts[0].LicensePlate)
	assert.Equal(t, "usage", resp.Alerts[0].Kind)
	assert.Equal(t, "normal", resp.Alerts[1].Priority)
	require.NotNil(t, resp.Alerts[1].DaysUntilDue)
	assert.Equal(t, 40, *resp.Alerts[1].DaysUntilDue)
	assert.Equal(t, 1, resp.Summary["urgent"])
	assert.Equal(t, 1, metrics.last["normal"])
	assert.Equal(t, 0, metrics.last["high"])
}

func TestService_LoadsInReadOnlyTransaction(t *testing.T) {
	s, vehicles, rules, jobs, _ := newService()
	tx := &readOnlyTx{}
	s.txManager = tx

	vehicles.On("List", mock.Anything).Return([]*domain.Vehicle{}, nil)
	rules.On("List", mock.Anything, true).Return([]*domain.MaintenanceRule{}, nil)
	jobs.On("List", mock.Anything, mock.Anything).Return([]*domain.MaintenanceJob{}, nil)

	_, err := s.All(context.Background())
	require.NoError(t, err)

	v := &domain.Vehicle{ID: uuid.New()}
	vehicles.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	_, err = s.ForVehicle(context.Background(), v.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, tx.calls)
}

func TestService_ForVehicle(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		s, vehicles, _, _, _ := newService()
		id := uuid.New()
		vehicles.On("GetByID", mock.Anything, id).Return(nil, vehicleRepo.ErrVehicleNotFound)

		_, err := s.ForVehicle(context.Background(), id)

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("history scoped to vehicle", func(t *testing.T) {
		s, vehicles, rules, jobs, _ := newService()
		v := &domain.Vehicle{ID: uuid.New(), FuelType: domain.FuelDiesel, Mileage: 10000}

		vehicles.On("GetByID", mock.Anything, v.ID).Return(v, nil)
		rules.On("List", mock.Anything, true).Return([]*domain.MaintenanceRule{kmRule()}, nil)
		jobs.On("List", mock.Anything, mock.MatchedBy(func(f domain.MaintenanceFilter) bool {
			return f.VehicleID != nil && *f.VehicleID == v.ID
		})).Return([]*domain.MaintenanceJob{}, nil)

		resp, err := s.ForVehicle(context.Background(), v.ID)

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		assert.NotNil(t, resp.Alerts)
		jobs.AssertExpectations(t)
	})

	t.Run("rules failure", func(t *testing.T) {
		s, vehicles, rules, _, _ := newService()
		v := &domain.Vehicle{ID: uuid.New()}

		vehicles.On("GetByID", mock.Anything, v.ID).Return(v, nil)
		rules.On("List", mock.Anything, true).Return(nil, errors.New("db down"))

		_, err := s.ForVehicle(context.Background(), v.ID)

		assert.ErrorIs(t, err, ErrInternal)
	})
}
