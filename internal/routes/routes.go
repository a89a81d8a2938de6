package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"frota_admin/internal/controllers"
	"frota_admin/internal/middleware"
)

// Controllers bundles the handlers the router wires up.
type Controllers struct {
	Auth     *controllers.AuthController
	Drivers  *controllers.DriverController
	Vehicles *controllers.VehicleController
	Arrivals *controllers.ArrivalController
	Travels  *controllers.TravelController
}

// SetupRouter registers every route group on a fresh engine. Reads are open;
// writes sit behind JWT auth.
func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, ctl.Auth)
	DriverRoutes(r, ctl.Drivers)
	VehicleRoutes(r, ctl.Vehicles)
	ArrivalRoutes(r, ctl.Arrivals)
	TravelRoutes(r, ctl.Travels)

	return r
}
