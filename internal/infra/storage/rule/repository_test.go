package rule

import (
	"context"
	"testing"

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

func TestList_ActiveOnly(t *testing.T) {
	repo, mock := newRepo(t)

	rows := sqlmock.NewRows(columns).
		AddRow(uuid.NewString(), "Entretien essence/diesel", "Vidange", "{gasoline,diesel}", "km", 15000, 1500, true).
		AddRow(uuid.NewString(), "Révision annuelle électrique", "", "{electric}", "days", 365, nil, true)

	mock.ExpectQuery("SELECT (.+) FROM maintenance_rules WHERE is_active = \\$1 ORDER BY name ASC").
		WithArgs(true).
		WillReturnRows(rows)

	rules, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, []domain.FuelType{domain.FuelGasoline, domain.FuelDiesel}, rules[0].FuelTypes)
	require.NotNil(t, rules[0].WarningValue)
	assert.Equal(t, 1500, *rules[0].WarningValue)
	assert.Equal(t, domain.IntervalDays, rules[1].IntervalUnit)
	assert.Nil(t, rules[1].WarningValue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByName_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM maintenance_rules WHERE name = \\$1").
		WithArgs("Unknown").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByName(context.Background(), "Unknown")
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM maintenance_rules WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), "Entretien hybride", "", "{hybrid}", "km", 15000, nil, false))

	rule, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Entretien hybride", rule.Name)
	assert.False(t, rule.IsActive)
	assert.True(t, rule.AppliesTo(domain.FuelHybrid))
}
