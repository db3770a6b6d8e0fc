package adminRoutes

import (
	adminController "learnhub/controllers/admin"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes wires course management endpoints, all behind the
// admin role gate.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/dashboard", adminController.Dashboard)
	adminGroup.Post("/course/create", validators.CreateCourse(), adminController.CreateCourse)
	adminGroup.Post("/course/:id/content", validators.CourseID(), validators.AddContent(), adminController.AddContent)
}
