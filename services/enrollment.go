package services

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// EnrollStatus reports whether an enroll call created the enrollment
// or found an existing one. Enrolling twice is not an error.
type EnrollStatus string

const (
	StatusNewlyEnrolled   EnrollStatus = "newly_enrolled"
	StatusAlreadyEnrolled EnrollStatus = "already_enrolled"
)

// Enroll transitions a (user, course) pair to enrolled exactly once.
// The enrollment and its zeroed progress row are created together so
// one never exists without the other.
func Enroll(db *gorm.DB, userID, courseID uint) (EnrollStatus, error) {
	enrolled, err := IsEnrolled(db, userID, courseID)
	if err != nil {
		return "", err
	}
	if enrolled {
		return StatusAlreadyEnrolled, nil
	}

	return enrollPair(db, userID, courseID)
}

// enrollPair inserts the enrollment and its progress row in a single
// transaction. A duplicate key error means a concurrent enroll for the
// same pair won the race; that counts as already enrolled.
func enrollPair(db *gorm.DB, userID, courseID uint) (EnrollStatus, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		enrollment := models.Enrollment{UserID: userID, CourseID: courseID}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		progress := models.Progress{
			UserID:      userID,
			CourseID:    courseID,
			Percent:     0,
			LastUpdated: time.Now(),
		}
		return tx.Create(&progress).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return StatusAlreadyEnrolled, nil
		}
		return "", err
	}

	return StatusNewlyEnrolled, nil
}

// IsEnrolled reports whether an enrollment row exists for the pair.
// The enrollments table is the sole authorization source of truth;
// enrollment is never inferred from a progress row.
func IsEnrolled(db *gorm.DB, userID, courseID uint) (bool, error) {
	var enrollment models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
