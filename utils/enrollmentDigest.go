package utils

import (
	"log"
	"time"

	"learnhub/database"
	"learnhub/models"

	"github.com/robfig/cron/v3"
)

// InitializeEnrollmentDigest sets up the daily enrollment digest job
func InitializeEnrollmentDigest() {
	log.Println("[DIGEST] Initializing enrollment digest scheduler...")

	c := cron.New()

	// Run daily at 8 AM
	c.AddFunc("0 8 * * *", func() {
		log.Println("[DIGEST] Running daily enrollment digest...")
		SendDailyEnrollmentDigest()
	})

	c.Start()
	log.Println("[DIGEST] Enrollment digest scheduler started - runs daily at 8 AM")
}

// SendDailyEnrollmentDigest counts the last day's enrollments and
// completions and mails them to the admin address.
func SendDailyEnrollmentDigest() {
	db := database.Database.Db
	since := time.Now().AddDate(0, 0, -1)

	var newEnrollments int64
	if err := db.Model(&models.Enrollment{}).
		Where("created_at >= ?", since).
		Count(&newEnrollments).Error; err != nil {
		log.Printf("[DIGEST] Error counting enrollments: %v", err)
		return
	}

	var completions int64
	if err := db.Model(&models.Progress{}).
		Where("last_updated >= ? AND percent >= 100", since).
		Count(&completions).Error; err != nil {
		log.Printf("[DIGEST] Error counting completions: %v", err)
		return
	}

	log.Printf("[DIGEST] Last 24h: %d new enrollments, %d completions", newEnrollments, completions)

	if err := SendEnrollmentDigest(newEnrollments, completions); err != nil {
		log.Printf("[DIGEST] Error sending digest email: %v", err)
	}
}
