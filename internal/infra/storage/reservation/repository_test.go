package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestHasBlockingOverlap(t *testing.T) {
	vehicleID := uuid.New()
	selfID := uuid.New()
	start := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

	t.Run("overlap found", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("SELECT id FROM reservations WHERE vehicle_id = \\$1 AND status IN \\(\\$2,\\$3,\\$4\\) AND start_date <= \\$5 AND end_date >= \\$6").
			WithArgs(vehicleID, "pending", "approved", "active", end, start).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

		found, err := repo.HasBlockingOverlap(context.Background(), vehicleID, start, end, nil)
		require.NoError(t, err)
		assert.True(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no overlap excluding self", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("SELECT id FROM reservations (.+) AND id <> \\$7").
			WithArgs(vehicleID, "pending", "approved", "active", end, start, selfID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		found, err := repo.HasBlockingOverlap(context.Background(), vehicleID, start, end, &selfID)
		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectQuery("SELECT id FROM reservations").WillReturnError(errors.New("timeout"))

		_, err := repo.HasBlockingOverlap(context.Background(), vehicleID, start, end, nil)
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestGetByID_ScansReturnFields(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns).AddRow(
		id.String(), uuid.NewString(), uuid.NewString(), now, now.Add(4*time.Hour), "completed",
		"client visit", nil, nil, "Return - Mileage: 50100 km",
		50100, "3/4", nil, true, "scratch", "45.50", nil, "12.00",
		now.Add(5*time.Hour), true, now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").WithArgs(id).WillReturnRows(rows)

	res, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, domain.ReservationCompleted, res.Status)
	require.NotNil(t, res.EndMileage)
	assert.Equal(t, 50100, *res.EndMileage)
	assert.True(t, res.HasIncident)
	require.NotNil(t, res.FuelCost)
	assert.True(t, decimal.RequireFromString("45.5").Equal(*res.FuelCost))
	assert.Nil(t, res.ParkingCost)
	assert.Nil(t, res.BatteryLevel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM reservations").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_ByUser(t *testing.T) {
	repo, mock := newRepo(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE user_id = \\$1 ORDER BY start_date DESC").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(columns))

	list, err := repo.List(context.Background(), domain.ReservationFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnnotified(t *testing.T) {
	repo, mock := newRepo(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM reservations WHERE user_id = \\$1 AND user_notified = \\$2").
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec("UPDATE reservations SET user_notified = \\$1 WHERE user_id = \\$2 AND user_notified = \\$3").
		WithArgs(true, userID, false).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.CountUnnotified(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	updated, err := repo.MarkNotified(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVehiclesReservedAt_EmptyInput(t *testing.T) {
	repo, mock := newRepo(t)

	ids, err := repo.VehiclesReservedAt(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
