package routes

import (
	"github.com/labstack/echo/v4"

	"procurement-api/internal/controllers"
)

func runUserRouter(api *echo.Group, ctrl *controllers.UserController) {
	users := api.Group("/users")
	users.GET("", ctrl.GetUsers)
	users.GET("/by-username/:username", ctrl.FindUserByUsername)
	users.GET("/:id", ctrl.FindUser)
	users.POST("", ctrl.CreateUser)
	users.PUT("/:id", ctrl.UpdateUser)
	users.DELETE("/:id", ctrl.DeleteUser)
}
