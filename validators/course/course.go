package courseValidator

import (
	"strconv"
	"strings"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest carries the optional checkout reference
type EnrollRequest struct {
	PaymentReference string `json:"payment_reference"`
}

// ProgressRequest carries a validated progress update
type ProgressRequest struct {
	Percent *int `json:"percent"`
}

// CourseID validates the :id route parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// EnrollCourse validates the enroll route: course id plus an optional
// payment reference in the body.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		reqData := new(EnrollRequest)
		// Body is optional when no payment gateway is configured
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("courseID", uint(courseID))
		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// UpdateProgress validates a progress update payload
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Percent == nil {
			errors["percent"] = "Percent is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// CourseList validates optional pagination query parameters
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `query:"page"`
			Limit *int `query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		page := 1
		limit := 10
		if reqData.Page != nil {
			page = *reqData.Page
		}
		if reqData.Limit != nil {
			limit = *reqData.Limit
		}

		c.Locals("page", page)
		c.Locals("limit", limit)
		return c.Next()
	}
}
