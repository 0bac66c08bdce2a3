package vehicle

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock, db
}

func vehicleRow(id uuid.UUID, mileage int) *sqlmock.Rows {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(columns).AddRow(
		id.String(), "Renault", "Clio", 2021, "AB-123-CD", nil, "blue", "gasoline", mileage, "available",
		nil, "AXA", nil, now.AddDate(0, 3, 0), nil, nil, now, now,
	)
}

func TestGetByID(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(vehicleRow(id, 42000))

	v, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, v.ID)
	assert.Equal(t, domain.FuelGasoline, v.FuelType)
	assert.Equal(t, 42000, v.Mileage)
	assert.Nil(t, v.VIN)
	require.NotNil(t, v.Color)
	assert.Equal(t, "blue", *v.Color)
	assert.Nil(t, v.AssignedUserID)
	require.NotNil(t, v.InsuranceExpiryDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, _ := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM vehicles").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestLockByID_UsesForUpdateInsideTx(t *testing.T) {
	repo, mock, db := newRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id = \\$1 FOR UPDATE").
		WithArgs(id).
		WillReturnRows(vehicleRow(id, 1000))
	mock.ExpectCommit()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)

	v, err := repo.LockByID(dbmetrics.WithTx(context.Background(), tx), id)
	require.NoError(t, err)
	assert.Equal(t, 1000, v.Mileage)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("INSERT INTO vehicles (.+) RETURNING id, created_at, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	v, err := repo.Create(context.Background(), &domain.Vehicle{
		Brand:        "Tesla",
		Model:        "Model 3",
		Year:         2023,
		LicensePlate: "EV-001-AA",
		FuelType:     domain.FuelElectric,
		Mileage:      20000,
		Status:       domain.VehicleAvailable,
	})
	require.NoError(t, err)
	assert.Equal(t, id, v.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRaiseMileage(t *testing.T) {
	repo, mock, _ := newRepo(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE vehicles SET mileage = GREATEST\\(mileage, \\$1\\)").
		WithArgs(55000, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.RaiseMileage(context.Background(), id, 55000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{"deleted", 1, nil, nil},
		{"not found", 0, nil, ErrVehicleNotFound},
		{"db error", 0, errors.New("connection reset"), ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newRepo(t)

			exp := mock.ExpectExec("DELETE FROM vehicles WHERE id = \\$1")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.Delete(context.Background(), uuid.New())
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
