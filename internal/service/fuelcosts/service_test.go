package fuelcosts

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fuelcostRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/fuelcost"
	vehicleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-FleetService/internal/service/fuelcosts/models"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var vehicleColumns = []string{
	"id", "brand", "model", "year", "license_plate", "vin", "color", "fuel_type",
	"mileage", "status", "assigned_user_id", "insurance_provider", "insurance_policy_number",
	"insurance_expiry_date", "last_technical_inspection", "notes", "created_at", "updated_at",
}

func newService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewService(fuelcostRepo.NewRepository(wrapped), vehicleRepo.NewRepository(wrapped), nopLogger{}), mock
}

func TestCreate(t *testing.T) {
	svc, mock := newService(t)
	vehicleID, costID := uuid.New(), uuid.New()
	created := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows(vehicleColumns).AddRow(
			vehicleID.String(), "Peugeot", "308", 2021, "AB-123-CD", nil, nil, "diesel",
			42000, "available", nil, nil, nil, nil, nil, nil, created, created,
		))
	mock.ExpectQuery("INSERT INTO fuel_costs").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(costID.String(), created))

	resp, err := svc.Create(context.Background(), &models.CreateFuelCostRequest{
		VehicleID: vehicleID,
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Liters:    decimal.RequireFromString("41.7"),
		Amount:    decimal.RequireFromString("77.15"),
	})

	require.NoError(t, err)
	assert.Equal(t, costID.String(), resp.ID)
	assert.Equal(t, "2024-05-01", resp.Date)
	assert.Equal(t, "77.15", resp.Amount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UnknownVehicle(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery("SELECT (.+) FROM vehicles").WillReturnRows(sqlmock.NewRows(vehicleColumns))

	_, err := svc.Create(context.Background(), &models.CreateFuelCostRequest{
		VehicleID: uuid.New(),
		Date:      time.Now(),
		Liters:    decimal.NewFromInt(10),
		Amount:    decimal.NewFromInt(20),
	})

	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name string
		req  *models.CreateFuelCostRequest
	}{
		{name: "missing vehicle", req: &models.CreateFuelCostRequest{Date: time.Now(), Liters: decimal.NewFromInt(1)}},
		{name: "missing date", req: &models.CreateFuelCostRequest{VehicleID: uuid.New(), Liters: decimal.NewFromInt(1)}},
		{name: "zero liters", req: &models.CreateFuelCostRequest{VehicleID: uuid.New(), Date: time.Now()}},
		{name: "negative amount", req: &models.CreateFuelCostRequest{VehicleID: uuid.New(), Date: time.Now(), Liters: decimal.NewFromInt(1), Amount: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc, mock := newService(t)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM fuel_costs WHERE id = \\$1").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, svc.Delete(context.Background(), id), ErrFuelCostNotFound)
}
