package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"procurement-api/internal/entities"
	"procurement-api/internal/infrastructure/bd"
	apperrors "procurement-api/pkg/errors"
)

const userTable = "users"

var userSelectColumns = []string{
	"u.id", "u.username", "u.email", "u.full_name", "u.hashed_password", "u.role", "u.phone_number",
	"u.created_at", "u.updated_at", "u.is_active",
}

var userColumns = bd.Columns{
	IDColumn: "u.id",
	Fields: map[string]bd.Column{
		"id":           {Expr: "u.id", Kind: bd.KindInt},
		"username":     {Expr: "u.username", Kind: bd.KindText},
		"email":        {Expr: "u.email", Kind: bd.KindText},
		"full_name":    {Expr: "u.full_name", Kind: bd.KindText},
		"role":         {Expr: "u.role", Kind: bd.KindText},
		"phone_number": {Expr: "u.phone_number", Kind: bd.KindText},
		"created_at":   {Expr: "u.created_at", Kind: bd.KindTime},
		"updated_at":   {Expr: "u.updated_at", Kind: bd.KindTime},
		"is_active":    {Expr: "u.is_active", Kind: bd.KindBool},
	},
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	List(ctx context.Context, filter bd.ListFilter) ([]entities.User, error)
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	Update(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type UserRepository struct {
	storage Querier
}

func NewUserRepository(storage Querier) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.FullName, &u.HashedPassword, &u.Role, &u.PhoneNumber,
		&u.CreatedAt, &u.UpdatedAt, &u.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	u.PhoneNumber = normalizePhone(u.PhoneNumber)
	return &u, nil
}

func (r *UserRepository) findOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := psql.Select(userSelectColumns...).From("users u").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return r.findOne(ctx, sq.Eq{"u.id": key})
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	return r.findOne(ctx, sq.Eq{"u.username": username})
}

func (r *UserRepository) List(ctx context.Context, filter bd.ListFilter) ([]entities.User, error) {
	builder, err := bd.Apply(psql.Select(userSelectColumns...).From("users u"), filter, userColumns)
	if err != nil {
		return nil, err
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	user.PhoneNumber = normalizePhone(user.PhoneNumber)
	if err := entities.Validate(user); err != nil {
		return nil, err
	}

	unique := []struct{ column, value string }{
		{"username", user.Username},
		{"email", user.Email},
	}
	for _, u := range unique {
		taken, err := exists(ctx, r.storage, userTable, u.column, u.value)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: user %s %q", apperrors.ErrConflict, u.column, u.value)
		}
	}

	query := `
		INSERT INTO users (username, email, full_name, hashed_password, role, phone_number, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := r.storage.QueryRow(ctx, query,
		user.Username, user.Email, user.FullName, user.HashedPassword, user.Role, user.PhoneNumber, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, translateWriteError(err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	user.PhoneNumber = normalizePhone(user.PhoneNumber)
	if err := entities.Validate(user); err != nil {
		return nil, err
	}

	query := `
		UPDATE users
		SET username = $1, email = $2, full_name = $3, hashed_password = $4, role = $5,
		    phone_number = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`
	err = r.storage.QueryRow(ctx, query,
		user.Username, user.Email, user.FullName, user.HashedPassword, user.Role,
		user.PhoneNumber, user.IsActive, user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateWriteError(err)
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.storage, userTable, id)
}
