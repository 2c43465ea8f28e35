package utils

import (
	"log"
	"upskill/config"
	"upskill/database"
	"upskill/models"

	"github.com/robfig/cron/v3"
)

// InitializeCompletionScheduler sets up the enrollment completion sweep
func InitializeCompletionScheduler() {
	log.Println("[COMPLETION-SCHEDULER] Initializing completion scheduler...")

	c := cron.New()

	spec := config.AppConfig.CompletionSweepSpec
	if _, err := c.AddFunc(spec, func() {
		SweepCompletedEnrollments()
	}); err != nil {
		log.Printf("[COMPLETION-SCHEDULER] Invalid cron spec %q: %v", spec, err)
		return
	}

	c.Start()
	log.Printf("[COMPLETION-SCHEDULER] Completion scheduler started (spec %q)", spec)
}

// SweepCompletedEnrollments promotes enrollments that reached full progress
// to completed status. Rows already completed are left alone.
func SweepCompletedEnrollments() {
	db := database.Database.Db

	result := db.Model(&models.Enrollment{}).
		Where("progress >= ? AND status = ?", 100, models.StatusEnrolled).
		Update("status", models.StatusCompleted)
	if result.Error != nil {
		log.Printf("[COMPLETION-SCHEDULER] Error sweeping enrollments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[COMPLETION-SCHEDULER] Marked %d enrollment(s) completed", result.RowsAffected)
	}
}
