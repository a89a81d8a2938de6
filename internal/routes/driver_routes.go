package routes

import (
	"github.com/gin-gonic/gin"

	"frota_admin/internal/controllers"
	"frota_admin/internal/middleware"
)

func DriverRoutes(r *gin.Engine, ctl *controllers.DriverController) {
	drivers := r.Group("/drivers")
	drivers.GET("", ctl.List)

	guarded := drivers.Group("")
	guarded.Use(middleware.RequireAuth())
	{
		guarded.POST("", ctl.Create)
		guarded.PUT("/:id", ctl.Update)
		guarded.DELETE("/:id", ctl.Disable)
	}
}
