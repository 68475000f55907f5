package routes

import (
	"github.com/labstack/echo/v4"

	"procurement-api/internal/controllers"
)

func runClientRouter(api *echo.Group, ctrl *controllers.ClientController) {
	clients := api.Group("/clients")
	clients.GET("", ctrl.GetClients)
	clients.GET("/:id", ctrl.FindClient)
	clients.POST("", ctrl.CreateClient)
	clients.PUT("/:id", ctrl.UpdateClient)
	clients.DELETE("/:id", ctrl.DeleteClient)
}
