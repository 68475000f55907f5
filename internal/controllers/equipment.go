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

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService, logger: logger}
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	page, extra, err := listParams(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	q := services.ListEquipmentQuery{
		Category:     ctx.QueryParam("category"),
		Status:       ctx.QueryParam("status"),
		Manufacturer: ctx.QueryParam("manufacturer"),
		Extra:        extra,
		Page:         page,
	}
	res, err := c.equipmentService.ListEquipment(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Equipment retrieved", res, page)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	res, err := c.equipmentService.GetEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Equipment found", res)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	var d dto.CreateEquipmentDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Equipment created", res)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	var d dto.UpdateEquipmentDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Equipment updated", res)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	deleted, err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if !deleted {
		return api.ErrorResponse(ctx, apperrors.ErrNotFound, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
