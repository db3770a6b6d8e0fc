package courseValidator

import (
	"strings"

	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest carries validated course creation data
type CreateCourseRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Instructor  string  `json:"instructor"`
	Category    string  `json:"category"`
}

// AddContentRequest carries validated content metadata. The file
// itself travels as multipart form data and is handled by the
// controller; url is the alternative for externally hosted assets.
type AddContentRequest struct {
	Title string `json:"title" form:"title"`
	Type  string `json:"type" form:"type"`
	URL   string `json:"url" form:"url"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// AddContent validator middleware
func AddContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.Type != "video" && reqData.Type != "pdf" {
			errors["type"] = "Type must be video or pdf!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}
