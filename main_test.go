package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"testing"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var app *fiber.App

func TestMain(m *testing.M) {
	config.LoadConfig()
	database.ConnectTestDb()
	app = setupApp()
	os.Exit(m.Run())
}

type apiResponse struct {
	Status  bool                   `json:"status"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func doRequest(t *testing.T, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func registerAndLogin(t *testing.T, name, email string) string {
	t.Helper()

	code, _ := doRequest(t, "POST", "/auth/signup", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, fiber.StatusCreated, code)

	code, result := doRequest(t, "POST", "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret-pass",
	})
	require.Equal(t, fiber.StatusOK, code)

	token, ok := result.Data["token"].(string)
	require.True(t, ok, "login response should carry a token")
	return token
}

func loginAsAdmin(t *testing.T) string {
	t.Helper()

	db := database.Database.Db

	var admin models.User
	if err := db.Where("email = ?", "admin@learnhub.com").First(&admin).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
		require.NoError(t, err)
		admin = models.User{
			Name:     "Admin User",
			Email:    "admin@learnhub.com",
			Password: string(hashed),
			Role:     models.RoleAdmin,
		}
		require.NoError(t, db.Create(&admin).Error)
	}

	code, result := doRequest(t, "POST", "/auth/login", "", map[string]interface{}{
		"email":    "admin@learnhub.com",
		"password": "admin123",
	})
	require.Equal(t, fiber.StatusOK, code)

	token, ok := result.Data["token"].(string)
	require.True(t, ok)
	return token
}

func createCourse(t *testing.T, adminToken, title string) uint {
	t.Helper()

	code, result := doRequest(t, "POST", "/admin/course/create", adminToken, map[string]interface{}{
		"title":       title,
		"description": "A course used by the tests.",
		"price":       19.99,
		"instructor":  "Test Instructor",
		"category":    "Development",
	})
	require.Equal(t, fiber.StatusCreated, code)

	id, ok := result.Data["ID"].(float64)
	require.True(t, ok, "course payload should carry its id")
	return uint(id)
}

func TestLearningFlow(t *testing.T) {
	adminToken := loginAsAdmin(t)
	courseID := createCourse(t, adminToken, "Learning Flow Course")
	token := registerAndLogin(t, "Uma Flow", "uma.flow@example.com")

	// Enroll (no payment gateway configured, verification is skipped)
	code, result := doRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "newly_enrolled", result.Data["status"])

	// Course details now show the enrollment
	code, result = doRequest(t, "GET", fmt.Sprintf("/course/%d", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, result.Data["is_enrolled"])

	// Fresh enrollment starts at zero percent
	code, result = doRequest(t, "GET", fmt.Sprintf("/course/%d/progress", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(0), result.Data["percent"])

	// Halfway through
	code, _ = doRequest(t, "POST", fmt.Sprintf("/course/%d/progress", courseID), token, map[string]interface{}{"percent": 50})
	require.Equal(t, fiber.StatusOK, code)

	code, result = doRequest(t, "GET", fmt.Sprintf("/course/%d/progress", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(50), result.Data["percent"])
	assert.Equal(t, false, result.Data["eligible_for_certificate"])

	// Not done yet, no certificate
	code, _ = doRequest(t, "GET", fmt.Sprintf("/course/%d/certificate", courseID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	// Finish the course
	code, _ = doRequest(t, "POST", fmt.Sprintf("/course/%d/progress", courseID), token, map[string]interface{}{"percent": 100})
	require.Equal(t, fiber.StatusOK, code)

	code, result = doRequest(t, "GET", fmt.Sprintf("/course/%d/certificate", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Uma Flow", result.Data["student_name"])
	assert.Equal(t, "Learning Flow Course", result.Data["course_title"])
	assert.NotEmpty(t, result.Data["serial_number"])
}

func TestEnrollIsIdempotent(t *testing.T) {
	adminToken := loginAsAdmin(t)
	courseID := createCourse(t, adminToken, "Idempotent Enroll Course")
	token := registerAndLogin(t, "Ravi Twice", "ravi.twice@example.com")

	code, result := doRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "newly_enrolled", result.Data["status"])

	code, result = doRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "already_enrolled", result.Data["status"])
}

func TestLearnContentRequiresEnrollment(t *testing.T) {
	adminToken := loginAsAdmin(t)
	courseID := createCourse(t, adminToken, "Gated Content Course")
	token := registerAndLogin(t, "Nina Gate", "nina.gate@example.com")

	code, _ := doRequest(t, "GET", fmt.Sprintf("/course/%d/learn", courseID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doRequest(t, "POST", fmt.Sprintf("/course/%d/progress", courseID), token, map[string]interface{}{"percent": 10})
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doRequest(t, "POST", fmt.Sprintf("/course/%d/enroll", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doRequest(t, "GET", fmt.Sprintf("/course/%d/learn", courseID), token, nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestAdminGate(t *testing.T) {
	token := registerAndLogin(t, "Sam Student", "sam.student@example.com")

	// A student is denied every admin operation
	code, _ := doRequest(t, "POST", "/admin/course/create", token, map[string]interface{}{
		"title":       "Should Not Exist",
		"description": "A course a student tried to create.",
	})
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = doRequest(t, "GET", "/admin/dashboard", token, nil)
	assert.Equal(t, fiber.StatusForbidden, code)

	// An admin is admitted
	adminToken := loginAsAdmin(t)
	code, _ = doRequest(t, "GET", "/admin/dashboard", adminToken, nil)
	assert.Equal(t, fiber.StatusOK, code)
}

func TestEnrollMissingCourse(t *testing.T) {
	token := registerAndLogin(t, "Lea Lost", "lea.lost@example.com")

	code, _ := doRequest(t, "POST", "/course/999999/enroll", token, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestUnauthenticatedRequestsAreRejected(t *testing.T) {
	code, _ := doRequest(t, "GET", "/course/my/list", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)

	code, _ = doRequest(t, "POST", "/course/1/enroll", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
