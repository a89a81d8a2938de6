package routes

import (
	"github.com/gin-gonic/gin"

	"frota_admin/internal/controllers"
	"frota_admin/internal/middleware"
)

func ArrivalRoutes(r *gin.Engine, ctl *controllers.ArrivalController) {
	arrivals := r.Group("/arrivals")
	arrivals.GET("", ctl.List)

	guarded := arrivals.Group("")
	guarded.Use(middleware.RequireAuth())
	{
		guarded.POST("", ctl.Create)
		guarded.PUT("/:id", ctl.Update)
	}
}
