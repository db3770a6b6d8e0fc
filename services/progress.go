package services

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// CompletionState answers how far a user is through a course and
// whether that clears the certificate bar.
type CompletionState struct {
	Percent  int  `json:"percent"`
	Eligible bool `json:"eligible_for_certificate"`
}

// UpdateProgress records the completion percentage for an enrolled
// pair. Callers are responsible for the enrollment gate; this only
// touches the progress row. Out-of-range percentages are clamped to
// [0, 100].
func UpdateProgress(db *gorm.DB, userID, courseID uint, percent int) error {
	percent = clampPercent(percent)

	res := updatePercent(db, userID, courseID, percent)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		// No progress row for the pair. Unreachable after a normal
		// enrollment, handled anyway.
		return insertProgress(db, userID, courseID, percent)
	}

	return nil
}

func updatePercent(db *gorm.DB, userID, courseID uint, percent int) *gorm.DB {
	return db.Model(&models.Progress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"percent":      percent,
			"last_updated": time.Now(),
		})
}

// insertProgress covers the insert-on-miss leg of the upsert. When two
// first-time updates race, the loser hits the unique index and retries
// the update instead of failing.
func insertProgress(db *gorm.DB, userID, courseID uint, percent int) error {
	progress := models.Progress{
		UserID:      userID,
		CourseID:    courseID,
		Percent:     percent,
		LastUpdated: time.Now(),
	}

	err := db.Create(&progress).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return updatePercent(db, userID, courseID, percent).Error
	}
	return err
}

// GetCompletionState returns the tracked percentage for the pair. A
// missing progress row reads as zero percent, not as an error.
func GetCompletionState(db *gorm.DB, userID, courseID uint) (CompletionState, error) {
	var progress models.Progress
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompletionState{Percent: 0, Eligible: false}, nil
		}
		return CompletionState{}, err
	}

	return CompletionState{
		Percent:  progress.Percent,
		Eligible: progress.Percent >= 100,
	}, nil
}

func clampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
