package adminController

import (
	"errors"
	"log"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a catalog course. Admin only.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		ImageURL:    reqData.ImageURL,
		Instructor:  reqData.Instructor,
		Category:    reqData.Category,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AddContent attaches a video or pdf to a course. The asset arrives
// either as a multipart file upload or as an external url.
func AddContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	// Check if course exists
	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add content!", nil)
	}

	reqData, ok := c.Locals("validatedContent").(*courseValidator.AddContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	url := reqData.URL
	if file, err := c.FormFile("file"); err == nil {
		if err := utils.ValidateContentFile(file, reqData.Type); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}

		fileName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving uploaded file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		url = utils.GetFileURL(fileName)
	}

	if url == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A file upload or url is required!", nil)
	}

	content := models.Content{
		CourseID: courseID,
		Title:    reqData.Title,
		Type:     reqData.Type,
		URL:      url,
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		log.Printf("Error creating content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content added successfully!", content)
}

// Dashboard lists every course with its enrollment count
func Dashboard(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	type CourseStats struct {
		models.Course
		Enrollments int64 `json:"enrollments"`
		Completions int64 `json:"completions"`
	}

	result := make([]CourseStats, len(courses))
	for i, course := range courses {
		var enrollments int64
		database.Database.Db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollments)

		var completions int64
		database.Database.Db.Model(&models.Progress{}).Where("course_id = ? AND percent >= 100", course.ID).Count(&completions)

		result[i] = CourseStats{Course: course, Enrollments: enrollments, Completions: completions}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"courses": result,
		"total":   len(result),
	})
}
