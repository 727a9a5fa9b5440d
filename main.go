package main

import (
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // logo uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	helper.StartRouteExpiryScheduler()
	defer helper.StopRouteExpiryScheduler()
	helper.StartFlightStatusScheduler()
	defer helper.StopFlightStatusScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
