package routes

import (
	"github.com/labstack/echo/v4"

	"procurement-api/internal/controllers"
)

func runEquipmentRouter(api *echo.Group, ctrl *controllers.EquipmentController) {
	equipment := api.Group("/equipment")
	equipment.GET("", ctrl.GetEquipment)
	equipment.GET("/:id", ctrl.FindEquipment)
	equipment.POST("", ctrl.CreateEquipment)
	equipment.PUT("/:id", ctrl.UpdateEquipment)
	equipment.DELETE("/:id", ctrl.DeleteEquipment)
}
