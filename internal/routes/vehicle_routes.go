package routes

import (
	"github.com/gin-gonic/gin"

	"frota_admin/internal/controllers"
	"frota_admin/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, ctl *controllers.VehicleController) {
	vehicles := r.Group("/vehicles")
	vehicles.GET("", ctl.List)

	guarded := vehicles.Group("")
	guarded.Use(middleware.RequireAuth())
	{
		guarded.POST("", ctl.Create)
		guarded.PUT("/:id", ctl.Update)
	}
}
