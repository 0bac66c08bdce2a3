package fuelcost

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

const table = "fuel_costs"

var columns = []string{
	"id",
	"vehicle_id",
	"user_id",
	"date",
	"liters",
	"amount",
	"mileage",
	"station",
	"notes",
	"created_at",
}

// Repository журнал заправок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заправок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись о заправке
func (r *Repository) Create(ctx context.Context, fc *domain.FuelCost) (*domain.FuelCost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("vehicle_id", "user_id", "date", "liters", "amount", "mileage", "station", "notes").
		Values(fc.VehicleID, fc.UserID, fc.Date, fc.Liters, fc.Amount, fc.Mileage, fc.Station, fc.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&fc.ID, &fc.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return fc, nil
}

// ListByVehicle возвращает заправки автомобиля, последние первыми
func (r *Repository) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*domain.FuelCost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicle - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVehicle - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	costs := make([]*domain.FuelCost, 0)
	for rows.Next() {
		var fc domain.FuelCost
		err := rows.Scan(
			&fc.ID,
			&fc.VehicleID,
			&fc.UserID,
			&fc.Date,
			&fc.Liters,
			&fc.Amount,
			&fc.Mileage,
			&fc.Station,
			&fc.Notes,
			&fc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByVehicle - scan fuel cost: %v", ErrScanRow, err)
		}
		costs = append(costs, &fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVehicle - rows iteration: %v", ErrExecQuery, err)
	}

	return costs, nil
}

// Delete удаляет запись о заправке
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrFuelCostNotFound
	}

	return nil
}
