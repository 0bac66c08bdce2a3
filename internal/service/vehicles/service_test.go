package vehicles

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/vehicles/models"
)

type mockVehicleRepo struct {
	mock.Mock
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) LockByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) List(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *mockVehicleRepo) Assign(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// reservedSet возвращает фиксированное множество занятых автомобилей
type reservedSet map[uuid.UUID]bool

func (r reservedSet) ReservedNow(_ context.Context, ids []uuid.UUID, _ time.Time) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if r[id] {
			out[id] = true
		}
	}
	return out, nil
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testVehicle(status domain.VehicleStatus) *domain.Vehicle {
	vin := "VF3ABC"
	return &domain.Vehicle{
		ID:           uuid.New(),
		Brand:        "Renault",
		Model:        "Zoe",
		Year:         2022,
		LicensePlate: "GH-456-IJ",
		VIN:          &vin,
		FuelType:     domain.FuelElectric,
		Mileage:      12000,
		Status:       status,
	}
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestList_DisplayStatus(t *testing.T) {
	repo := &mockVehicleRepo{}
	free := testVehicle(domain.VehicleAvailable)
	busy := testVehicle(domain.VehicleAvailable)
	garage := testVehicle(domain.VehicleMaintenance)
	repo.On("List", mock.Anything).Return([]*domain.Vehicle{free, busy, garage}, nil)

	svc := NewService(repo, reservedSet{busy.ID: true, garage.ID: true}, passTx{}, nopLogger{})

	list, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "available", list[0].DisplayStatus)
	assert.Equal(t, "reserved", list[1].DisplayStatus)
	assert.Equal(t, "available", list[1].Status)
	// обслуживание важнее бронирования
	assert.Equal(t, "maintenance", list[2].DisplayStatus)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockVehicleRepo{}
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, vehicleRepo.ErrVehicleNotFound)

	svc := NewService(repo, reservedSet{}, passTx{}, nopLogger{})

	_, err := svc.Get(context.Background(), id)

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestUpdate_NormalizesEmptyStrings(t *testing.T) {
	repo := &mockVehicleRepo{}
	v := testVehicle(domain.VehicleAvailable)
	expiry := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	v.InsuranceExpiryDate = &expiry
	repo.On("LockByID", mock.Anything, v.ID).Return(v, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(got *domain.Vehicle) bool {
		return got.VIN == nil &&
			got.InsuranceExpiryDate == nil &&
			got.Color != nil && *got.Color == "bleu" &&
			got.Mileage == 12500
	})).Return(v, nil)

	svc := NewService(repo, reservedSet{}, passTx{}, nopLogger{})

	resp, err := svc.Update(context.Background(), v.ID, &models.UpdateVehicleRequest{
		VIN:                 strPtr(""),
		Color:               strPtr("bleu"),
		InsuranceExpiryDate: strPtr(""),
		Mileage:             intPtr(12500),
	})

	require.NoError(t, err)
	assert.Nil(t, resp.VIN)
	assert.Nil(t, resp.InsuranceExpiryDate)
	repo.AssertExpectations(t)
}

func TestUpdate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateVehicleRequest
		wantErr error
	}{
		{name: "mileage decrease", req: &models.UpdateVehicleRequest{Mileage: intPtr(11999)}, wantErr: ErrMileageDecrease},
		{name: "reserved is not storable", req: &models.UpdateVehicleRequest{Status: strPtr("reserved")}, wantErr: ErrInvalidInput},
		{name: "unknown fuel", req: &models.UpdateVehicleRequest{FuelType: strPtr("coal")}, wantErr: ErrInvalidInput},
		{name: "bad date", req: &models.UpdateVehicleRequest{LastTechnicalInspection: strPtr("01/02/2024")}, wantErr: ErrInvalidInput},
		{name: "empty brand", req: &models.UpdateVehicleRequest{Brand: strPtr(" ")}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockVehicleRepo{}
			v := testVehicle(domain.VehicleAvailable)
			repo.On("LockByID", mock.Anything, v.ID).Return(v, nil)

			svc := NewService(repo, reservedSet{}, passTx{}, nopLogger{})

			_, err := svc.Update(context.Background(), v.ID, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestAssign_ReturnsUpdatedVehicle(t *testing.T) {
	repo := &mockVehicleRepo{}
	v := testVehicle(domain.VehicleAvailable)
	userID := uuid.New()
	repo.On("Assign", mock.Anything, v.ID, &userID).Return(nil)
	assigned := *v
	assigned.AssignedUserID = &userID
	repo.On("GetByID", mock.Anything, v.ID).Return(&assigned, nil)

	svc := NewService(repo, reservedSet{}, passTx{}, nopLogger{})

	resp, err := svc.Assign(context.Background(), v.ID, &userID)

	require.NoError(t, err)
	require.NotNil(t, resp.AssignedUserID)
	assert.Equal(t, userID.String(), *resp.AssignedUserID)
}

func TestAssign_NilUUIDClears(t *testing.T) {
	repo := &mockVehicleRepo{}
	v := testVehicle(domain.VehicleAvailable)
	repo.On("Assign", mock.Anything, v.ID, (*uuid.UUID)(nil)).Return(nil)
	repo.On("GetByID", mock.Anything, v.ID).Return(v, nil)

	svc := NewService(repo, reservedSet{}, passTx{}, nopLogger{})
	nilID := uuid.Nil

	resp, err := svc.Assign(context.Background(), v.ID, &nilID)

	require.NoError(t, err)
	assert.Nil(t, resp.AssignedUserID)
}

func TestDelete(t *testing.T) {
	repo := &mockVehicleRepo{}
	missing := uuid.New()
	repo.On("Delete", mock.Anything, missing).Return(vehicleRepo.ErrVehicleNotFound)

	svc := NewService(repo, reservedSet{}, passTx{}, nopLogger{})

	assert.ErrorIs(t, svc.Delete(context.Background(), missing), ErrVehicleNotFound)
}
