package routes

import (
	"github.com/gin-gonic/gin"

	"frota_admin/internal/controllers"
)

func TravelRoutes(r *gin.Engine, ctl *controllers.TravelController) {
	r.GET("/travels", ctl.List)
}
