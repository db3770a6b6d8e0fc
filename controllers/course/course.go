package controllers

import (
	"errors"
	"log"

	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists the catalog, newest first. Public.
func GetAllCourses(c *fiber.Ctx) error {
	page, _ := c.Locals("page").(int)
	limit, _ := c.Locals("limit").(int)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{})

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns one course with its contents. Public; when
// the request carries a valid token the enrollment state is included
// so the client can toggle Enroll vs Continue Learning.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	var contents []models.Content
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("id asc").Find(&contents).Error; err != nil {
		log.Printf("Error fetching contents for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	// Enrollment state is re-derived per request, never cached in the
	// session.
	isEnrolled := false
	if session, ok := middleware.SessionFromCtx(c); ok {
		enrolled, err := services.IsEnrolled(database.Database.Db, session.UserID, courseID)
		if err != nil {
			log.Printf("Error checking enrollment for user %d course %d: %v", session.UserID, courseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}
		isEnrolled = enrolled
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"contents":    contents,
		"is_enrolled": isEnrolled,
	})
}

// GetMyCourses lists the caller's enrolled courses with their progress
func GetMyCourses(c *fiber.Ctx) error {
	session, ok := middleware.SessionFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.Where("user_id = ?", session.UserID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", session.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type CourseWithProgress struct {
		models.Course
		Percent int `json:"percent"`
	}

	result := make([]CourseWithProgress, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}

		state, err := services.GetCompletionState(database.Database.Db, session.UserID, enrollment.CourseID)
		if err != nil {
			log.Printf("Error fetching progress for user %d course %d: %v", session.UserID, enrollment.CourseID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
		}

		result = append(result, CourseWithProgress{Course: course, Percent: state.Percent})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"courses": result,
		"total":   len(result),
	})
}
