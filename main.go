package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	adminRoutes "learnhub/routers/adminRoutes"
	authRoutes "learnhub/routers/authRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// setupApp assembles the fiber application. Split from main so the
// end-to-end tests can drive the same app over app.Test.
func setupApp() *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded course assets
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	return app
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := setupApp()

	utils.InitializeEnrollmentDigest()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
