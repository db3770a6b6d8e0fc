package controllers

import (
	"errors"
	"log"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
)

// GetCertificate issues a completion certificate for a fully finished
// course. An incomplete or never-enrolled course is Forbidden.
func GetCertificate(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	certificate, err := services.IssueCertificate(database.Database.Db, session.UserID, courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotCompleted) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Complete the course to get the certificate.", nil)
		}
		log.Printf("Error issuing certificate for user %d course %d: %v", session.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate issued successfully!", certificate)
}
