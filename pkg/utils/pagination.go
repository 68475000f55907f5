package utils

import (
	"net/url"
	"strconv"

	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
)

// ParsePaginationParams reads skip/limit from the query string.
// Missing values fall back to the defaults; a limit above MaxLimit is capped.
func ParsePaginationParams(values url.Values) (types.Page, error) {
	var page types.Page

	if skipStr := values.Get("skip"); skipStr != "" {
		s, err := strconv.ParseUint(skipStr, 10, 64)
		if err != nil {
			return page, apperrors.NewInvalidInputError("skip must be a non-negative integer, got %q", skipStr)
		}
		page.Skip = s
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		l, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			return page, apperrors.NewInvalidInputError("limit must be a non-negative integer, got %q", limitStr)
		}
		page.Limit = l
	}

	return page.Normalize(), nil
}
