package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetService/pkg/psqlbuilder"
)

const (
	table = "profiles"

	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"email",
	"full_name",
	"role",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий профилей пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает профили, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("full_name ASC NULLS LAST", "email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan profile: %v", ErrScanRow, err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return profiles, nil
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	return p, nil
}

// EmailExists проверяет, зарегистрирован ли email (без учета регистра)
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("EXISTS(SELECT 1 FROM "+table+" WHERE lower(email) = lower(?))", email)).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: EmailExists - build select query: %v", ErrBuildQuery, err)
	}

	var found bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("%w: EmailExists - execute select: %v", ErrExecQuery, err)
	}

	return found, nil
}

// Update меняет только заданные поля и возвращает профиль целиком
func (r *Repository) Update(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	set := map[string]interface{}{
		"updated_at": squirrel.Expr("NOW()"),
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.FullName != nil {
		if *upd.FullName == "" {
			set["full_name"] = nil
		} else {
			set["full_name"] = *upd.FullName
		}
	}
	if upd.Role != nil {
		set["role"] = string(*upd.Role)
	}

	query, args, err := psqlbuilder.Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, email, full_name, role, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return p, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var (
		p        domain.Profile
		fullName sql.NullString
	)
	err := row.Scan(
		&p.ID,
		&p.Email,
		&fullName,
		&p.Role,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if fullName.Valid {
		p.FullName = &fullName.String
	}

	return &p, nil
}
