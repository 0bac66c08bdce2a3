package rule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

const table = "maintenance_rules"

var columns = []string{
	"id",
	"name",
	"description",
	"fuel_types",
	"interval_unit",
	"interval_value",
	"warning_value",
	"is_active",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий правил обслуживания (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает правила, отсортированные по имени.
// activeOnly оставляет только активные правила.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.MaintenanceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table).OrderBy("name ASC")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.MaintenanceRule, 0)
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan rule: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return rules, nil
}

// GetByName получает правило по уникальному имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.MaintenanceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

func scanRule(row rowScanner) (*domain.MaintenanceRule, error) {
	var (
		rule      domain.MaintenanceRule
		fuelTypes pq.StringArray
	)
	err := row.Scan(
		&rule.ID,
		&rule.Name,
		&rule.Description,
		&fuelTypes,
		&rule.IntervalUnit,
		&rule.IntervalValue,
		&rule.WarningValue,
		&rule.IsActive,
	)
	if err != nil {
		return nil, err
	}

	rule.FuelTypes = make([]domain.FuelType, 0, len(fuelTypes))
	for _, f := range fuelTypes {
		rule.FuelTypes = append(rule.FuelTypes, domain.FuelType(f))
	}

	return &rule, nil
}
