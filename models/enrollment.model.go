package models

import "gorm.io/gorm"

// Enrollment grants a user access to a course's learning content.
// The composite unique index is the safety net against duplicate
// enrollment rows when two enroll calls race for the same pair.
type Enrollment struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID uint `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
}
