package utils

import (
	"net/url"
	"strconv"
	"strings"

	apperrors "procurement-api/pkg/errors"
)

// ParseFilterParams collects `filter[key]=value` query parameters into a map.
// Only the first value of a repeated key is kept.
//
//	/offers?filter[price__gte]=100&filter[status]=pending
func ParseFilterParams(query url.Values) map[string]interface{} {
	filters := make(map[string]interface{})
	for key, values := range query {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") || len(values) == 0 {
			continue
		}
		filterKey := key[len("filter[") : len(key)-1]
		if filterKey == "" {
			continue
		}
		filters[filterKey] = values[0]
	}
	return filters
}

// ParseOptionalUint returns nil when key is absent.
func ParseOptionalUint(query url.Values, key string) (*uint64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("%s must be a non-negative integer, got %q", key, raw)
	}
	return &v, nil
}

// ParseOptionalFloat returns nil when key is absent.
func ParseOptionalFloat(query url.Values, key string) (*float64, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("%s must be a number, got %q", key, raw)
	}
	return &v, nil
}
