package controllers

import (
	"errors"
	"log"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse enrolls the caller in a course after checkout. The
// call is idempotent: enrolling twice reports already enrolled.
func EnrollInCourse(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	// Check if course exists
	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// Confirm checkout with the payment gateway when one is configured
	reqData, _ := c.Locals("validatedEnroll").(*courseValidator.EnrollRequest)
	reference := ""
	if reqData != nil {
		reference = reqData.PaymentReference
	}
	if err := utils.VerifyPayment(reference); err != nil {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "Payment verification failed!", nil)
	}

	status, err := services.Enroll(database.Database.Db, session.UserID, courseID)
	if err != nil {
		log.Printf("Error enrolling user %d in course %d: %v", session.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if status == services.StatusAlreadyEnrolled {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course.", fiber.Map{
			"status": status,
		})
	}

	go func(email, name, title string) {
		if err := utils.SendEnrollmentConfirmation(email, name, title); err != nil {
			log.Printf("Error sending enrollment confirmation to %s: %v", email, err)
		}
	}(session.Email, session.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful! You are enrolled.", fiber.Map{
		"status": status,
	})
}

// GetLearnContent serves the learning material of a course. The
// enrollment gate is re-checked on every call.
func GetLearnContent(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	enrolled, err := services.IsEnrolled(database.Database.Db, session.UserID, courseID)
	if err != nil {
		log.Printf("Error checking enrollment for user %d course %d: %v", session.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var contents []models.Content
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("id asc").Find(&contents).Error; err != nil {
		log.Printf("Error fetching contents for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", fiber.Map{
		"course":   course,
		"contents": contents,
	})
}
