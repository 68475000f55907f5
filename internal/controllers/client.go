package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"procurement-api/internal/dto"
	"procurement-api/internal/services"
	"procurement-api/pkg/api"
	apperrors "procurement-api/pkg/errors"
)

type ClientController struct {
	clientService services.ClientServiceInterface
	logger        *zap.Logger
}

func NewClientController(clientService services.ClientServiceInterface, logger *zap.Logger) *ClientController {
	return &ClientController{clientService: clientService, logger: logger}
}

func (c *ClientController) GetClients(ctx echo.Context) error {
	page, extra, err := listParams(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	q := services.ListClientsQuery{
		Name:        ctx.QueryParam("name"),
		Email:       ctx.QueryParam("email"),
		CompanyName: ctx.QueryParam("company_name"),
		Extra:       extra,
		Page:        page,
	}
	res, err := c.clientService.ListClients(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Clients retrieved", res, page)
}

func (c *ClientController) FindClient(ctx echo.Context) error {
	res, err := c.clientService.GetClient(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Client found", res)
}

func (c *ClientController) CreateClient(ctx echo.Context) error {
	var d dto.CreateClientDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.clientService.CreateClient(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Client created", res)
}

func (c *ClientController) UpdateClient(ctx echo.Context) error {
	var d dto.UpdateClientDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.clientService.UpdateClient(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Client updated", res)
}

func (c *ClientController) DeleteClient(ctx echo.Context) error {
	deleted, err := c.clientService.DeleteClient(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if !deleted {
		return api.ErrorResponse(ctx, apperrors.ErrNotFound, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
