package bd

import (
	"fmt"
	"sort"
	"strings"

	apperrors "procurement-api/pkg/errors"
)

// Operator is the closed set of comparisons a filter condition can express.
type Operator int

const (
	OpEquals Operator = iota
	OpContains
	OpGreaterOrEqual
	OpLessOrEqual
)

func (o Operator) String() string {
	switch o {
	case OpEquals:
		return "eq"
	case OpContains:
		return "icontains"
	case OpGreaterOrEqual:
		return "gte"
	case OpLessOrEqual:
		return "lte"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Condition is a single predicate on one entity field.
type Condition struct {
	Field string
	Op    Operator
	Value interface{}
}

func Equals(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

// Contains is a case-insensitive substring match.
func Contains(field string, value string) Condition {
	return Condition{Field: field, Op: OpContains, Value: value}
}

func GreaterOrEqual(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpGreaterOrEqual, Value: value}
}

func LessOrEqual(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpLessOrEqual, Value: value}
}

var suffixes = []struct {
	suffix string
	op     Operator
}{
	{"__icontains", OpContains},
	{"__gte", OpGreaterOrEqual},
	{"__lte", OpLessOrEqual},
}

// ParseFilterKey splits "price__gte" into ("price", OpGreaterOrEqual).
// A key without a known suffix is an equality on the whole key.
func ParseFilterKey(key string) (string, Operator) {
	for _, s := range suffixes {
		if field, ok := strings.CutSuffix(key, s.suffix); ok {
			return field, s.op
		}
	}
	return key, OpEquals
}

// ParseConditions turns `field[__operator]: value` pairs into conditions, sorted by key.
// Field names are checked later against the target table in Apply.
func ParseConditions(filters map[string]interface{}) ([]Condition, error) {
	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	conds := make([]Condition, 0, len(filters))
	for _, key := range keys {
		field, op := ParseFilterKey(key)
		if field == "" {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownFilterField, key)
		}
		conds = append(conds, Condition{Field: field, Op: op, Value: filters[key]})
	}
	return conds, nil
}
