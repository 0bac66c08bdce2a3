package create_vehicle

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	args := m.Called(ctx, v)
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

// recordingMaintenanceRepo запоминает созданные работы
type recordingMaintenanceRepo struct {
	jobs []*domain.MaintenanceJob
	err  error
}

func (r *recordingMaintenanceRepo) Create(_ context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error) {
	if r.err != nil {
		return nil, r.err
	}
	job.ID = uuid.New()
	r.jobs = append(r.jobs, job)
	return job, nil
}

type passTx struct{}

func (passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var now = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newUseCase(vehicles *mockVehicleRepo, rules *mockRuleRepo, maint *recordingMaintenanceRepo) *UseCase {
	uc := NewUseCase(vehicles, rules, maint, passTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

// assignID имитирует RETURNING id у INSERT
func assignID(vehicles *mockVehicleRepo) *domain.Vehicle {
	created := &domain.Vehicle{}
	vehicles.On("Create", mock.Anything, mock.AnythingOfType("*domain.Vehicle")).
		Run(func(args mock.Arguments) {
			*created = *args.Get(1).(*domain.Vehicle)
			created.ID = uuid.New()
		}).
		Return(created, nil)
	return created
}

func TestExecute_SeedsBaselinePerMatchingRule(t *testing.T) {
	vehicles := &mockVehicleRepo{}
	rules := &mockRuleRepo{}
	maint := &recordingMaintenanceRepo{}
	created := assignID(vehicles)

	oil := &domain.MaintenanceRule{
		ID:            uuid.New(),
		Name:          "Entretien essence/diesel",
		FuelTypes:     []domain.FuelType{domain.FuelGasoline, domain.FuelDiesel},
		IntervalUnit:  domain.IntervalKm,
		IntervalValue: 15000,
		IsActive:      true,
	}
	battery := &domain.MaintenanceRule{
		ID:            uuid.New(),
		Name:          "Révision annuelle électrique",
		FuelTypes:     []domain.FuelType{domain.FuelElectric},
		IntervalUnit:  domain.IntervalDays,
		IntervalValue: 365,
		IsActive:      true,
	}
	rules.On("List", mock.Anything, true).Return([]*domain.MaintenanceRule{oil, battery}, nil)

	resp, err := newUseCase(vehicles, rules, maint).Execute(context.Background(), &Request{
		Brand:               "Peugeot",
		Model:               "308",
		Year:                2020,
		LicensePlate:        "AB-123-CD",
		FuelType:            "diesel",
		Mileage:             20000,
		MaintenanceUpToDate: true,
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), resp.ID)
	assert.Equal(t, "available", resp.Status)

	require.Len(t, maint.jobs, 1)
	job := maint.jobs[0]
	assert.Equal(t, created.ID, job.VehicleID)
	assert.Equal(t, domain.MaintenanceCompleted, job.Status)
	assert.Equal(t, domain.MaintenanceRoutine, job.Type)
	require.NotNil(t, job.RuleID)
	assert.Equal(t, oil.ID, *job.RuleID)
	require.NotNil(t, job.MileageAtService)
	assert.Equal(t, 20000, *job.MileageAtService)
	assert.Equal(t, now, job.ScheduledDate)
	require.NotNil(t, job.CompletedDate)
	assert.Equal(t, now, *job.CompletedDate)
	assert.Equal(t, "Entretien essence/diesel - État initial (maintenance à jour à l'ajout)", job.Description)
}

func TestExecute_NoSeeding(t *testing.T) {
	tests := []struct {
		name     string
		upToDate bool
		mileage  int
	}{
		{name: "flag not set", upToDate: false, mileage: 20000},
		{name: "zero mileage", upToDate: true, mileage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicles := &mockVehicleRepo{}
			rules := &mockRuleRepo{}
			maint := &recordingMaintenanceRepo{}
			assignID(vehicles)

			_, err := newUseCase(vehicles, rules, maint).Execute(context.Background(), &Request{
				Brand:               "Renault",
				Model:               "Clio",
				Year:                2019,
				LicensePlate:        "XY-999-ZZ",
				FuelType:            "gasoline",
				Mileage:             tt.mileage,
				MaintenanceUpToDate: tt.upToDate,
			})

			require.NoError(t, err)
			assert.Empty(t, maint.jobs)
			rules.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_SeedFailureAbortsCreate(t *testing.T) {
	vehicles := &mockVehicleRepo{}
	rules := &mockRuleRepo{}
	maint := &recordingMaintenanceRepo{err: assert.AnError}
	assignID(vehicles)
	rules.On("List", mock.Anything, true).Return([]*domain.MaintenanceRule{{
		ID:            uuid.New(),
		Name:          "Contrôle pneumatiques",
		FuelTypes:     []domain.FuelType{domain.FuelHybrid},
		IntervalUnit:  domain.IntervalKm,
		IntervalValue: 20000,
		IsActive:      true,
	}}, nil)

	_, err := newUseCase(vehicles, rules, maint).Execute(context.Background(), &Request{
		Brand:               "Toyota",
		Model:               "Yaris",
		Year:                2021,
		LicensePlate:        "HY-001-BR",
		FuelType:            "hybrid",
		Mileage:             5000,
		MaintenanceUpToDate: true,
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	status := "reserved"
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "missing brand", req: &Request{Model: "308", LicensePlate: "A", Year: 2020, FuelType: "diesel"}},
		{name: "missing plate", req: &Request{Brand: "Peugeot", Model: "308", Year: 2020, FuelType: "diesel"}},
		{name: "unknown fuel", req: &Request{Brand: "Peugeot", Model: "308", LicensePlate: "A", Year: 2020, FuelType: "lpg"}},
		{name: "old year", req: &Request{Brand: "Peugeot", Model: "308", LicensePlate: "A", Year: 1900, FuelType: "diesel"}},
		{name: "negative mileage", req: &Request{Brand: "Peugeot", Model: "308", LicensePlate: "A", Year: 2020, FuelType: "diesel", Mileage: -5}},
		{name: "derived status", req: &Request{Brand: "Peugeot", Model: "308", LicensePlate: "A", Year: 2020, FuelType: "diesel", Status: &status}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicles := &mockVehicleRepo{}
			_, err := newUseCase(vehicles, &mockRuleRepo{}, &recordingMaintenanceRepo{}).Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			vehicles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestToDomain_EmptyOptionalStringsBecomeNull(t *testing.T) {
	empty := ""
	color := "gris"

	v := toDomain(&Request{VIN: &empty, Color: &color, Notes: &empty, FuelType: "electric"})

	assert.Nil(t, v.VIN)
	assert.Nil(t, v.Notes)
	require.NotNil(t, v.Color)
	assert.Equal(t, "gris", *v.Color)
	assert.Equal(t, domain.VehicleAvailable, v.Status)
}
