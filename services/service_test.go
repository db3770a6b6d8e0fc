package services

import (
	"testing"

	"learnhub/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// An in-memory SQLite database lives per connection, so the pool
	// must stay at a single one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Content{},
		&models.Enrollment{},
		&models.Progress{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, Password: "hashed", Role: models.RoleStudent}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, title string) models.Course {
	t.Helper()

	course := models.Course{Title: title, Description: "test course", Price: 19.99, Instructor: "Test Instructor"}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create test course: %v", err)
	}
	return course
}
