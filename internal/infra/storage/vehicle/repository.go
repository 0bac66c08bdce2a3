package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

const table = "vehicles"

var columns = []string{
	"id",
	"brand",
	"model",
	"year",
	"license_plate",
	"vin",
	"color",
	"fuel_type",
	"mileage",
	"status",
	"assigned_user_id",
	"insurance_provider",
	"insurance_policy_number",
	"insurance_expiry_date",
	"last_technical_inspection",
	"notes",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает автомобиль.
// Внутри транзакции (через context) выполняется в ней.
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"brand",
			"model",
			"year",
			"license_plate",
			"vin",
			"color",
			"fuel_type",
			"mileage",
			"status",
			"assigned_user_id",
			"insurance_provider",
			"insurance_policy_number",
			"insurance_expiry_date",
			"last_technical_inspection",
			"notes",
		).
		Values(
			v.Brand,
			v.Model,
			v.Year,
			v.LicensePlate,
			v.VIN,
			v.Color,
			v.FuelType,
			v.Mileage,
			v.Status,
			v.AssignedUserID,
			v.InsuranceProvider,
			v.InsurancePolicyNumber,
			v.InsuranceExpiryDate,
			v.LastTechnicalInspection,
			v.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return v, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	return r.getOne(ctx, id, false)
}

// LockByID получает автомобиль с блокировкой строки (SELECT ... FOR UPDATE).
// Используется внутри транзакции, чтобы сериализовать записи по одному автомобилю.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	return r.getOne(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getOne(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return v, nil
}

// List возвращает все автомобили, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan vehicle: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return vehicles, nil
}

// Update перезаписывает изменяемые поля автомобиля
func (r *Repository) Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(map[string]interface{}{
			"brand":                     v.Brand,
			"model":                     v.Model,
			"year":                      v.Year,
			"license_plate":             v.LicensePlate,
			"vin":                       v.VIN,
			"color":                     v.Color,
			"fuel_type":                 v.FuelType,
			"mileage":                   v.Mileage,
			"status":                    v.Status,
			"insurance_provider":        v.InsuranceProvider,
			"insurance_policy_number":   v.InsurancePolicyNumber,
			"insurance_expiry_date":     v.InsuranceExpiryDate,
			"last_technical_inspection": v.LastTechnicalInspection,
			"notes":                     v.Notes,
			"updated_at":                squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": v.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return v, nil
}

// SetMileageAndStatus записывает пробег и статус (возврат автомобиля)
func (r *Repository) SetMileageAndStatus(ctx context.Context, id uuid.UUID, mileage int, status domain.VehicleStatus) error {
	query, args, err := psqlbuilder.Update(table).
		Set("mileage", mileage).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetMileageAndStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "SetMileageAndStatus", query, args)
}

// RaiseMileage увеличивает пробег до mileage, никогда не уменьшая его
func (r *Repository) RaiseMileage(ctx context.Context, id uuid.UUID, mileage int) error {
	query, args, err := psqlbuilder.Update(table).
		Set("mileage", squirrel.Expr("GREATEST(mileage, ?)", mileage)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RaiseMileage - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "RaiseMileage", query, args)
}

// Assign назначает автомобиль пользователю (nil снимает назначение)
func (r *Repository) Assign(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	query, args, err := psqlbuilder.Update(table).
		Set("assigned_user_id", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Assign - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Assign", query, args)
}

// Delete удаляет автомобиль. Зависимые записи удаляются каскадно.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, "Delete", query, args)
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
		return ErrVehicleNotFound
	}

	return nil
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(
		&v.ID,
		&v.Brand,
		&v.Model,
		&v.Year,
		&v.LicensePlate,
		&v.VIN,
		&v.Color,
		&v.FuelType,
		&v.Mileage,
		&v.Status,
		&v.AssignedUserID,
		&v.InsuranceProvider,
		&v.InsurancePolicyNumber,
		&v.InsuranceExpiryDate,
		&v.LastTechnicalInspection,
		&v.Notes,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
