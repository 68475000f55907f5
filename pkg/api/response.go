package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
}

type ListBody[T any] struct {
	List       []T             `json:"list"`
	Pagination *PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Skip  uint64 `json:"skip"`
	Limit uint64 `json:"limit"`
	Count int    `json:"count"`
}

// SuccessOne returns a single object.
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func SuccessList[T any](c echo.Context, message string, list []T, page types.Page) error {
	if list == nil {
		list = make([]T, 0)
	}

	body := ListBody[T]{
		List: list,
		Pagination: &PaginationMeta{
			Skip:  page.Skip,
			Limit: page.Limit,
			Count: len(list),
		},
	}

	return c.JSON(http.StatusOK, Response[ListBody[T]]{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// statusFor maps domain errors to HTTP status codes and user-facing messages.
func statusFor(err error) (int, string) {
	var invalid *apperrors.InvalidInputError
	var echoErr *echo.HTTPError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Record not found"
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrInUse):
		return http.StatusConflict, "Record is still referenced by other records"
	case errors.Is(err, apperrors.ErrRelationNotFound):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperrors.ErrUnknownFilterField),
		errors.Is(err, apperrors.ErrInvalidFilterValue),
		errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &invalid):
		return http.StatusBadRequest, invalid.Message
	case errors.As(err, &echoErr):
		return echoErr.Code, fmt.Sprint(echoErr.Message)
	}
	return http.StatusInternalServerError, "Internal server error"
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
			)
		}
		return c.JSON(httpErr.Code, Response[any]{
			Status:  false,
			Message: httpErr.Message,
			Body:    httpErr.Details,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, Response[any]{
			Status:  false,
			Message: "Validation error: " + strings.Join(msgs, "; "),
		})
	}

	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		logger.Error("Unexpected Error", zap.Error(err), zap.String("path", c.Path()))
	} else {
		logger.Debug("Request rejected", zap.Int("code", code), zap.Error(err))
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
	})
}
