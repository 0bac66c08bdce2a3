package reservation

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

const table = "reservations"

var columns = []string{
	"id",
	"vehicle_id",
	"user_id",
	"start_date",
	"end_date",
	"status",
	"purpose",
	"start_location",
	"end_location",
	"notes",
	"end_mileage",
	"fuel_level",
	"battery_level",
	"has_incident",
	"incident_description",
	"fuel_cost",
	"parking_cost",
	"toll_cost",
	"returned_at",
	"user_notified",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с бронированиями автомобилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"vehicle_id",
			"user_id",
			"start_date",
			"end_date",
			"status",
			"purpose",
			"start_location",
			"end_location",
			"notes",
			"user_notified",
		).
		Values(
			res.VehicleID,
			res.UserID,
			res.StartDate,
			res.EndDate,
			res.Status,
			res.Purpose,
			res.StartLocation,
			res.EndLocation,
			res.Notes,
			res.UserNotified,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
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

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List возвращает бронирования по фильтру
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From(table)

	if filter.VehicleID != nil {
		builder = builder.Where(squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": filter.Statuses})
	}
	if filter.Ascending {
		builder = builder.OrderBy("start_date ASC")
	} else {
		builder = builder.OrderBy("start_date DESC")
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

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan reservation: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return reservations, nil
}

// HasBlockingOverlap проверяет, есть ли блокирующее бронирование автомобиля,
// пересекающееся с [start, end] (границы включительно).
// excludeID исключает из проверки само обновляемое бронирование.
func (r *Repository) HasBlockingOverlap(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id").
		From(table).
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": domain.BlockingReservationStatuses}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start}).
		Limit(1)
	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingOverlap - execute select: %v", ErrExecQuery, err)
	}

	return true, nil
}

// VehiclesReservedAt возвращает ID автомобилей, у которых блокирующее бронирование покрывает момент at
func (r *Repository) VehiclesReservedAt(ctx context.Context, vehicleIDs []uuid.UUID, at time.Time) ([]uuid.UUID, error) {
	if len(vehicleIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT vehicle_id").
		From(table).
		Where(squirrel.Eq{"vehicle_id": vehicleIDs}).
		Where(squirrel.Eq{"status": domain.BlockingReservationStatuses}).
		Where(squirrel.LtOrEq{"start_date": at}).
		Where(squirrel.Gt{"end_date": at}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: VehiclesReservedAt - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: VehiclesReservedAt - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: VehiclesReservedAt - scan id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: VehiclesReservedAt - rows iteration: %v", ErrExecQuery, err)
	}

	return ids, nil
}

// Update перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(map[string]interface{}{
			"vehicle_id":     res.VehicleID,
			"start_date":     res.StartDate,
			"end_date":       res.EndDate,
			"status":         res.Status,
			"purpose":        res.Purpose,
			"start_location": res.StartLocation,
			"end_location":   res.EndLocation,
			"notes":          res.Notes,
			"user_notified":  res.UserNotified,
			"updated_at":     squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": res.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return res, nil
}

// Complete переводит бронирование в completed и сохраняет данные возврата
func (r *Repository) Complete(ctx context.Context, res *domain.Reservation) error {
	query, args, err := psqlbuilder.Update(table).
		SetMap(map[string]interface{}{
			"status":               domain.ReservationCompleted,
			"notes":                res.Notes,
			"end_mileage":          res.EndMileage,
			"fuel_level":           res.FuelLevel,
			"battery_level":        res.BatteryLevel,
			"has_incident":         res.HasIncident,
			"incident_description": res.IncidentDescription,
			"fuel_cost":            res.FuelCost,
			"parking_cost":         res.ParkingCost,
			"toll_cost":            res.TollCost,
			"returned_at":          res.ReturnedAt,
			"updated_at":           squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Complete", query, args)
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Delete", query, args)
}

// CountUnnotified возвращает количество непрочитанных изменений статуса у пользователя
func (r *Repository) CountUnnotified(ctx context.Context, userID uuid.UUID) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "user_notified": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountUnnotified - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnnotified - execute select: %v", ErrExecQuery, err)
	}

	return count, nil
}

// MarkNotified помечает все изменения статуса пользователя как прочитанные
func (r *Repository) MarkNotified(ctx context.Context, userID uuid.UUID) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("user_notified", true).
		Where(squirrel.Eq{"user_id": userID, "user_notified": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNotified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNotified - execute update: %v", ErrExecQuery, err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNotified - get rows affected: %v", ErrExecQuery, err)
	}

	return updated, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, op, query string, args []interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID,
		&res.VehicleID,
		&res.UserID,
		&res.StartDate,
		&res.EndDate,
		&res.Status,
		&res.Purpose,
		&res.StartLocation,
		&res.EndLocation,
		&res.Notes,
		&res.EndMileage,
		&res.FuelLevel,
		&res.BatteryLevel,
		&res.HasIncident,
		&res.IncidentDescription,
		&res.FuelCost,
		&res.ParkingCost,
		&res.TollCost,
		&res.ReturnedAt,
		&res.UserNotified,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
