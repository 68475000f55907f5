package routes

import (
	"github.com/labstack/echo/v4"

	"procurement-api/internal/controllers"
)

func runOfferRouter(api *echo.Group, ctrl *controllers.OfferController) {
	offers := api.Group("/offers")
	offers.GET("", ctrl.GetOffers)
	offers.GET("/:id", ctrl.FindOffer)
	offers.POST("", ctrl.CreateOffer)
	offers.PUT("/:id", ctrl.UpdateOffer)
	offers.DELETE("/:id", ctrl.DeleteOffer)
}
