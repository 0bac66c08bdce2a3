package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

const table = "maintenance"

var columns = []string{
	"id",
	"vehicle_id",
	"rule_id",
	"type",
	"description",
	"status",
	"scheduled_date",
	"completed_date",
	"mileage_at_service",
	"cost",
	"provider",
	"notes",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с техническим обслуживанием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория обслуживания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись об обслуживании
func (r *Repository) Create(ctx context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"vehicle_id",
			"rule_id",
			"type",
			"description",
			"status",
			"scheduled_date",
			"completed_date",
			"mileage_at_service",
			"cost",
			"provider",
			"notes",
		).
		Values(
			job.VehicleID,
			job.RuleID,
			job.Type,
			job.Description,
			job.Status,
			job.ScheduledDate,
			job.CompletedDate,
			job.MileageAtService,
			job.Cost,
			job.Provider,
			job.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return job, nil
}

// GetByID получает работу по ID. Внутри транзакции строка блокируется.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	job, err := scanJob(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrMaintenanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan job: %v", ErrScanRow, err)
	}

	return job, nil
}

// List возвращает работы по фильтру
func (r *Repository) List(ctx context.Context, filter domain.MaintenanceFilter) ([]*domain.MaintenanceJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.VehicleID != nil {
		builder = builder.Where(squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": filter.Statuses})
	}
	if filter.Ascending {
		builder = builder.OrderBy("scheduled_date ASC")
	} else {
		builder = builder.OrderBy("scheduled_date DESC")
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

	jobs := make([]*domain.MaintenanceJob, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan job: %v", ErrScanRow, err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return jobs, nil
}

// HasBlockingBetween проверяет, есть ли у автомобиля блокирующая работа,
// запланированная в [start, end] (границы включительно)
func (r *Repository) HasBlockingBetween(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": domain.BlockingMaintenanceStatuses}).
		Where(squirrel.GtOrEq{"scheduled_date": start}).
		Where(squirrel.LtOrEq{"scheduled_date": end}).
		Limit(1)
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingBetween - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingBetween - execute select: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Update перезаписывает изменяемые поля работы
func (r *Repository) Update(ctx context.Context, job *domain.MaintenanceJob) (*domain.MaintenanceJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(map[string]interface{}{
			"vehicle_id":         job.VehicleID,
			"rule_id":            job.RuleID,
			"type":               job.Type,
			"description":        job.Description,
			"status":             job.Status,
			"scheduled_date":     job.ScheduledDate,
			"completed_date":     job.CompletedDate,
			"mileage_at_service": job.MileageAtService,
			"cost":               job.Cost,
			"provider":           job.Provider,
			"notes":              job.Notes,
			"updated_at":         squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": job.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&job.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMaintenanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return job, nil
}

func scanJob(row rowScanner) (*domain.MaintenanceJob, error) {
	var job domain.MaintenanceJob
	err := row.Scan(
		&job.ID,
		&job.VehicleID,
		&job.RuleID,
		&job.Type,
		&job.Description,
		&job.Status,
		&job.ScheduledDate,
		&job.CompletedDate,
		&job.MileageAtService,
		&job.Cost,
		&job.Provider,
		&job.Notes,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
