package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"procurement-api/internal/dto"
	"procurement-api/internal/services"
	"procurement-api/pkg/api"
	apperrors "procurement-api/pkg/errors"
	"procurement-api/pkg/utils"
)

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(requestService services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: requestService, logger: logger}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	page, extra, err := listParams(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	query := ctx.QueryParams()
	clientID, err := utils.ParseOptionalUint(query, "client_id")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	minBudget, err := utils.ParseOptionalFloat(query, "min_budget")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	maxBudget, err := utils.ParseOptionalFloat(query, "max_budget")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	q := services.ListRequestsQuery{
		ClientID:          clientID,
		EquipmentCategory: query.Get("equipment_category"),
		Status:            query.Get("status"),
		Priority:          query.Get("priority"),
		MinBudget:         minBudget,
		MaxBudget:         maxBudget,
		Extra:             extra,
		Page:              page,
	}
	res, err := c.requestService.ListRequests(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Requests retrieved", res, page)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	res, err := c.requestService.GetRequest(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Request found", res)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var d dto.CreateRequestDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Request created", res)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	var d dto.UpdateRequestDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequest(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Request updated", res)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	deleted, err := c.requestService.DeleteRequest(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if !deleted {
		return api.ErrorResponse(ctx, apperrors.ErrNotFound, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
