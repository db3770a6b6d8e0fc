package authRoutes

import (
	authController "learnhub/controllers/auth"
	"learnhub/middleware"
	authValidator "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes wires registration, login and profile endpoints
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/profile", middleware.JWTMiddleware, authController.Profile)
}
