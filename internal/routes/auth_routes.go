package routes

import (
	"github.com/gin-gonic/gin"

	"frota_admin/internal/controllers"
)

func AuthRoutes(r *gin.Engine, ctl *controllers.AuthController) {
	r.POST("/users", ctl.Signup)
	r.POST("/sessions", ctl.Login)
}
