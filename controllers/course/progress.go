package controllers

import (
	"log"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/services"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress records how much of the course the caller has
// consumed. Gated on enrollment, re-checked per call.
func UpdateProgress(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrolled, err := services.IsEnrolled(database.Database.Db, session.UserID, courseID)
	if err != nil {
		log.Printf("Error checking enrollment for user %d course %d: %v", session.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok || reqData.Percent == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := services.UpdateProgress(database.Database.Db, session.UserID, courseID, *reqData.Percent); err != nil {
		log.Printf("Error updating progress for user %d course %d: %v", session.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", nil)
}

// GetProgress reports the completion state for the caller and course
func GetProgress(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	state, err := services.GetCompletionState(database.Database.Db, session.UserID, courseID)
	if err != nil {
		log.Printf("Error fetching progress for user %d course %d: %v", session.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", state)
}
