package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress tracks completion percentage per enrolled (user, course)
// pair. A row is created with percent 0 alongside the enrollment, in
// the same transaction. percent == 100 drives certificate eligibility.
type Progress struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	CourseID    uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_progress_user_course"`
	Percent     int       `json:"percent" gorm:"default:0"` // 0-100
	LastUpdated time.Time `json:"last_updated"`
}

func (Progress) TableName() string {
	return "progress"
}
