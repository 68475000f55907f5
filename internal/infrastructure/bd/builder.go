package bd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
)

// ColumnKind tells Apply how to coerce loosely typed filter values.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
)

// Column maps a filterable entity field to its SQL expression.
type Column struct {
	Expr string
	Kind ColumnKind
}

// Columns is the set of filterable fields of one table, keyed by JSON field name.
// IDColumn is used for the default ordering.
type Columns struct {
	IDColumn string
	Fields   map[string]Column
}

// ListFilter is a conjunction of conditions plus the page window applied after filtering.
type ListFilter struct {
	Conditions []Condition
	types.Page
}

// NewListFilter builds a filter over the given conditions with a normalized page.
func NewListFilter(page types.Page, conds ...Condition) ListFilter {
	return ListFilter{Conditions: conds, Page: page.Normalize()}
}

// Apply restricts the builder by every condition (AND), orders by id and paginates.
// A condition on a field that is not listed in cols fails the whole query.
func Apply(builder sq.SelectBuilder, f ListFilter, cols Columns) (sq.SelectBuilder, error) {
	for _, cond := range f.Conditions {
		col, ok := cols.Fields[cond.Field]
		if !ok {
			return builder, fmt.Errorf("%w: %q", apperrors.ErrUnknownFilterField, cond.Field)
		}
		pred, err := predicate(col, cond)
		if err != nil {
			return builder, err
		}
		builder = builder.Where(pred)
	}

	page := f.Page.Normalize()
	if cols.IDColumn != "" {
		builder = builder.OrderBy(cols.IDColumn + " ASC")
	}
	return builder.Offset(page.Skip).Limit(page.Limit), nil
}

func predicate(col Column, cond Condition) (sq.Sqlizer, error) {
	if cond.Op == OpContains {
		if col.Kind != KindText {
			return nil, fmt.Errorf("%w: contains is only supported on text fields, got %q", apperrors.ErrInvalidFilterValue, cond.Field)
		}
		s, ok := cond.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: contains expects a string for %q", apperrors.ErrInvalidFilterValue, cond.Field)
		}
		return sq.ILike{col.Expr: "%" + escapeLike(s) + "%"}, nil
	}

	value, err := coerce(col.Kind, cond.Value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", apperrors.ErrInvalidFilterValue, cond.Field, err)
	}

	switch cond.Op {
	case OpEquals:
		return sq.Eq{col.Expr: value}, nil
	case OpGreaterOrEqual:
		if value == nil {
			return nil, fmt.Errorf("%w: %q: range bound cannot be null", apperrors.ErrInvalidFilterValue, cond.Field)
		}
		return sq.GtOrEq{col.Expr: value}, nil
	case OpLessOrEqual:
		if value == nil {
			return nil, fmt.Errorf("%w: %q: range bound cannot be null", apperrors.ErrInvalidFilterValue, cond.Field)
		}
		return sq.LtOrEq{col.Expr: value}, nil
	}
	return nil, fmt.Errorf("%w: unsupported operator %d", apperrors.ErrInvalidFilterValue, cond.Op)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// coerce converts query-string values to the column's Go type so pgx can encode them.
// Values that already have a usable type pass through untouched; nil stays nil (IS NULL).
func coerce(kind ColumnKind, v interface{}) (interface{}, error) {
	s, isString := v.(string)
	if v == nil || !isString {
		return v, nil
	}

	switch kind {
	case KindInt:
		return strconv.ParseInt(s, 10, 64)
	case KindFloat:
		return strconv.ParseFloat(s, 64)
	case KindBool:
		return strconv.ParseBool(s)
	case KindTime:
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		return time.Parse(time.DateOnly, s)
	}
	return s, nil
}
