package services

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgressAndCompletionState(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Uma", "uma@example.com")
	course := createTestCourse(t, db, "Python for Data Science")

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, UpdateProgress(db, user.ID, course.ID, 50))

	state, err := GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, state.Percent)
	assert.False(t, state.Eligible)

	require.NoError(t, UpdateProgress(db, user.ID, course.ID, 100))

	state, err = GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, state.Percent)
	assert.True(t, state.Eligible)
}

func TestUpdateProgressClampsOutOfRange(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Uma", "uma@example.com")
	course := createTestCourse(t, db, "Figma UI/UX Design Essentials")

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, UpdateProgress(db, user.ID, course.ID, 150))
	state, err := GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, state.Percent)

	require.NoError(t, UpdateProgress(db, user.ID, course.ID, -20))
	state, err = GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Percent)
}

func TestNinetyNinePercentIsNotEligible(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Uma", "uma@example.com")
	course := createTestCourse(t, db, "Digital Marketing Masterclass")

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, UpdateProgress(db, user.ID, course.ID, 99))

	state, err := GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, state.Percent)
	assert.False(t, state.Eligible)
}

func TestUpdateProgressInsertsOnMissingRow(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Uma", "uma@example.com")
	course := createTestCourse(t, db, "Portrait Photography")

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	// Remove the progress row to reach the defensive insert path
	require.NoError(t, db.Unscoped().
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Delete(&models.Progress{}).Error)

	require.NoError(t, UpdateProgress(db, user.ID, course.ID, 40))

	state, err := GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, state.Percent)
}

// insertProgress is the insert-on-miss leg. Calling it with the row
// already present simulates two first-time updates racing.
func TestInsertProgressRetriesUpdateOnDuplicate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Uma", "uma@example.com")
	course := createTestCourse(t, db, "Public Speaking Mastery")

	_, err := Enroll(db, user.ID, course.ID)
	require.NoError(t, err)

	require.NoError(t, insertProgress(db, user.ID, course.ID, 60))

	state, err := GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, state.Percent)

	var progressCount int64
	db.Model(&models.Progress{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&progressCount)
	assert.Equal(t, int64(1), progressCount)
}

func TestCompletionStateWithoutEnrollment(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "Uma", "uma@example.com")
	course := createTestCourse(t, db, "Investing in Stocks")

	state, err := GetCompletionState(db, user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Percent)
	assert.False(t, state.Eligible)
}
