package services

import (
	"errors"
	"time"

	"learnhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrCourseNotCompleted rejects a certificate for a course the user
// has not finished, including courses the user never enrolled in.
var ErrCourseNotCompleted = errors.New("course not completed")

// Certificate is the payload rendered for a completed course. It is
// recomputed on every request and never persisted.
type Certificate struct {
	SerialNumber string    `json:"serial_number"`
	StudentName  string    `json:"student_name"`
	CourseTitle  string    `json:"course_title"`
	Instructor   string    `json:"instructor"`
	IssuedOn     time.Time `json:"issued_on"`
}

// IssueCertificate gates the certificate on a fully completed course
// and assembles the data needed to render it.
func IssueCertificate(db *gorm.DB, userID, courseID uint) (*Certificate, error) {
	state, err := GetCompletionState(db, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !state.Eligible {
		return nil, ErrCourseNotCompleted
	}

	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return nil, err
	}

	return &Certificate{
		SerialNumber: uuid.NewString(),
		StudentName:  user.Name,
		CourseTitle:  course.Title,
		Instructor:   course.Instructor,
		IssuedOn:     time.Now(),
	}, nil
}
