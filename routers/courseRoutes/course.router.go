package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing (public; details show enrollment state for
	// logged-in users)
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/my/list", middleware.JWTMiddleware, controllers.GetMyCourses)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment (post-checkout)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Learning content (for enrolled users)
	courseGroup.Get("/:id/learn", middleware.JWTMiddleware, validators.CourseID(), controllers.GetLearnContent)

	// Progress tracking
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateProgress(), controllers.UpdateProgress)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetProgress)

	// Certificate
	courseGroup.Get("/:id/certificate", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCertificate)
}
