package main

import (
	"log"

	"railway_booking/config"
	"railway_booking/database"
	"railway_booking/handler"
	"railway_booking/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	handler.StartMaintenanceScheduler()
	defer handler.StopMaintenanceScheduler()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
