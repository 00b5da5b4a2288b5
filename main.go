package main

import (
	"os"
	"time"

	"venue-booking/database"
	"venue-booking/database/seeders"
	"venue-booking/logger"
	"venue-booking/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768,
		WriteBufferSize: 32768,
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
	})

	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, relying on environment")
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}
	seeders.SeedAdminUser(db)

	// Panics surface as 500s instead of tearing the process down.
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db)

	appHost := os.Getenv("APP_HOST")
	appPort := os.Getenv("APP_PORT")
	logger.Success("Server is running on " + appHost + ":" + appPort)

	if err := app.Listen(appHost + ":" + appPort); err != nil {
		logger.Fatal("Server stopped", err)
	}
}
