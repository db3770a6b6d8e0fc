package models

import "gorm.io/gorm"

const (
	ContentTypeVideo = "video"
	ContentTypePDF   = "pdf"
)

// Content is a single learning asset attached to a course.
// Display order follows creation id.
type Content struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Title    string `json:"title"`
	Type     string `json:"type"` // video, pdf
	URL      string `json:"url"`
}
