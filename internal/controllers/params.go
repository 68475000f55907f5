package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"procurement-api/internal/infrastructure/bd"
	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/types"
	"procurement-api/pkg/utils"
)

// listParams reads skip/limit and the generic filter[field__op]=value parameters.
func listParams(ctx echo.Context) (types.Page, []bd.Condition, error) {
	query := ctx.QueryParams()

	page, err := utils.ParsePaginationParams(query)
	if err != nil {
		return page, nil, err
	}

	conds, err := bd.ParseConditions(utils.ParseFilterParams(query))
	if err != nil {
		return page, nil, err
	}
	return page, conds, nil
}

// bindAndValidate binds the request body into dst and runs the validator.
func bindAndValidate(ctx echo.Context, dst interface{}) error {
	if err := ctx.Bind(dst); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil)
	}
	return ctx.Validate(dst)
}
