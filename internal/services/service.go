package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	apperrors "procurement-api/pkg/errors"
)

func idString(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// mustReference turns a missing referenced record into ErrRelationNotFound.
func mustReference[T any](ctx context.Context, get func(context.Context, string) (*T, error), what string, id uint64) error {
	if _, err := get(ctx, idString(id)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s %d", apperrors.ErrRelationNotFound, what, id)
		}
		return err
	}
	return nil
}
