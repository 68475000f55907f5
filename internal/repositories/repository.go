package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/utils"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// parseID converts a path identifier to the numeric key. Anything that is not a
// positive integer can never match a row.
func parseID(id string) (uint64, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// normalizePhone maps a blank phone to NULL and rewrites the rest to "+<digits>".
// Input without any digit is returned untouched so phone_e164 rejects it.
func normalizePhone(p null.String) null.String {
	if !p.Valid || strings.TrimSpace(p.String) == "" {
		return null.String{}
	}
	n := utils.NormalizePhoneNumber(p.String)
	if n == "" || n == "+" {
		return p
	}
	return null.StringFrom(n)
}

// translateWriteError maps constraint violations raised on INSERT/UPDATE to domain errors.
func translateWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", apperrors.ErrRelationNotFound, pgErr.ConstraintName)
		}
	}
	return err
}

// exists reports whether table has a row where column equals value.
func exists(ctx context.Context, q Querier, table, column string, value interface{}) (bool, error) {
	query, args, err := psql.Select("1").From(table).Where(sq.Eq{column: value}).
		Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}
	var found bool
	if err := q.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// deleteByID removes one row. A malformed or unknown id yields false with no error;
// a row still referenced by other rows yields ErrInUse.
func deleteByID(ctx context.Context, q Querier, table, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}

	query, args, err := psql.Delete(table).Where(sq.Eq{"id": key}).ToSql()
	if err != nil {
		return false, err
	}
	result, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return false, fmt.Errorf("%w: %s", apperrors.ErrInUse, pgErr.ConstraintName)
		}
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func jsonObject(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}
