package bookingtoken

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

func TestEnsureSchema(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS garage_booking_tokens").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAndGet(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	vehicleID := uuid.New()
	expires := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	now := expires.AddDate(0, 0, -30)

	mock.ExpectQuery("INSERT INTO garage_booking_tokens \\(token,vehicle_id,alert_rule_name,expires_at\\)").
		WithArgs("abc", vehicleID, "Entretien hybride", expires).
		WillReturnRows(sqlmock.NewRows([]string{"id", "used", "created_at"}).AddRow(id.String(), false, now))

	created, err := repo.Create(context.Background(), &domain.GarageBookingToken{
		Token:         "abc",
		VehicleID:     vehicleID,
		AlertRuleName: "Entretien hybride",
		ExpiresAt:     expires,
	})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.False(t, created.Used)

	mock.ExpectQuery("SELECT (.+) FROM garage_booking_tokens WHERE token = \\$1").
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), "abc", vehicleID.String(), "Entretien hybride", expires, true, now))

	got, err := repo.GetByToken(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, vehicleID, got.VehicleID)
	assert.True(t, got.Used)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByToken_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM garage_booking_tokens").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByToken(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestMarkUsed_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("UPDATE garage_booking_tokens SET used = \\$1 WHERE id = \\$2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.MarkUsed(context.Background(), uuid.New()), ErrTokenNotFound)
}
