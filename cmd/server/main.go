package main

import (
	"log"
	"net/http"

	"frota_admin/internal/config"
	"frota_admin/internal/controllers"
	"frota_admin/internal/logger"
	"frota_admin/internal/middleware"
	"frota_admin/internal/repository"
	"frota_admin/internal/routes"
	"frota_admin/internal/services"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()
	db := config.GetDB()

	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	arrivalRepo := repository.NewArrivalRepository(db)
	userRepo := repository.NewUserRepository(db)

	ctl := routes.Controllers{
		Auth:     &controllers.AuthController{Users: userRepo},
		Drivers:  &controllers.DriverController{Service: services.NewDriverService(driverRepo, vehicleRepo)},
		Vehicles: &controllers.VehicleController{Service: services.NewVehicleService(vehicleRepo)},
		Arrivals: &controllers.ArrivalController{Service: services.NewArrivalService(arrivalRepo, driverRepo, vehicleRepo)},
		Travels:  &controllers.TravelController{Service: services.NewTravelService(arrivalRepo)},
	}

	r := routes.SetupRouter(ctl)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
