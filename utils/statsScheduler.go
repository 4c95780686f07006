package utils

import (
	"log"

	"valquiz/database"
	"valquiz/models"

	"github.com/robfig/cron/v3"
)

// InitializeStatsScheduler sets up the nightly completion-stats snapshot
func InitializeStatsScheduler() {
	log.Println("[STATS-SCHEDULER] Initializing stats scheduler...")

	c := cron.New()

	// Run daily at 2 AM
	c.AddFunc("0 2 * * *", func() {
		LogCompletionStats()
	})

	c.Start()
	log.Println("[STATS-SCHEDULER] Stats scheduler started - runs daily at 2 AM")
}

// LogCompletionStats writes per-stage completion counts to the server log
func LogCompletionStats() {
	db := database.Database.Db

	var total, details, pretest, intervention, posttest int64
	db.Model(&models.User{}).Count(&total)
	db.Model(&models.User{}).Where("user_details_completed = ?", true).Count(&details)
	db.Model(&models.User{}).Where("pretest_completed = ?", true).Count(&pretest)
	db.Model(&models.User{}).Where("intervention_completed = ?", true).Count(&intervention)
	db.Model(&models.User{}).Where("posttest_completed = ?", true).Count(&posttest)

	log.Printf("[STATS-SCHEDULER] users=%d user-details=%d pretest=%d intervention=%d posttest=%d",
		total, details, pretest, intervention, posttest)
}
