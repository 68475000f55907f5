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

type OfferController struct {
	offerService services.OfferServiceInterface
	logger       *zap.Logger
}

func NewOfferController(offerService services.OfferServiceInterface, logger *zap.Logger) *OfferController {
	return &OfferController{offerService: offerService, logger: logger}
}

func (c *OfferController) GetOffers(ctx echo.Context) error {
	page, extra, err := listParams(ctx)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	query := ctx.QueryParams()
	requestID, err := utils.ParseOptionalUint(query, "request_id")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	equipmentID, err := utils.ParseOptionalUint(query, "equipment_id")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	minPrice, err := utils.ParseOptionalFloat(query, "min_price")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	maxPrice, err := utils.ParseOptionalFloat(query, "max_price")
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	q := services.ListOffersQuery{
		RequestID:   requestID,
		EquipmentID: equipmentID,
		Status:      query.Get("status"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Extra:       extra,
		Page:        page,
	}
	res, err := c.offerService.ListOffers(ctx.Request().Context(), q)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessList(ctx, "Offers retrieved", res, page)
}

func (c *OfferController) FindOffer(ctx echo.Context) error {
	res, err := c.offerService.GetOffer(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Offer found", res)
}

func (c *OfferController) CreateOffer(ctx echo.Context) error {
	var d dto.CreateOfferDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.offerService.CreateOffer(ctx.Request().Context(), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusCreated, "Offer created", res)
}

func (c *OfferController) UpdateOffer(ctx echo.Context) error {
	var d dto.UpdateOfferDTO
	if err := bindAndValidate(ctx, &d); err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.offerService.UpdateOffer(ctx.Request().Context(), ctx.Param("id"), d)
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	return api.SuccessOne(ctx, http.StatusOK, "Offer updated", res)
}

func (c *OfferController) DeleteOffer(ctx echo.Context) error {
	deleted, err := c.offerService.DeleteOffer(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return api.ErrorResponse(ctx, err, c.logger)
	}
	if !deleted {
		return api.ErrorResponse(ctx, apperrors.ErrNotFound, c.logger)
	}
	return ctx.NoContent(http.StatusNoContent)
}
