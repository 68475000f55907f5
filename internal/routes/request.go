package routes

import (
	"github.com/labstack/echo/v4"

	"procurement-api/internal/controllers"
)

func runRequestRouter(api *echo.Group, ctrl *controllers.RequestController) {
	requests := api.Group("/requests")
	requests.GET("", ctrl.GetRequests)
	requests.GET("/:id", ctrl.FindRequest)
	requests.POST("", ctrl.CreateRequest)
	requests.PUT("/:id", ctrl.UpdateRequest)
	requests.DELETE("/:id", ctrl.DeleteRequest)
}
