// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"escaperoom/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserProgress{},
		&models.ChallengeAttempt{},
		&models.StationResult{},
		&models.Evaluation{},
		&models.PageView{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes AutoMigrate does not derive from tags
func createIndexes() {
	db := GetDB()

	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempts_user_challenge ON challenge_attempts(user_id, challenge_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_attempts_started ON challenge_attempts(started_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_evaluations_created ON evaluations(created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_page_views_accessed ON page_views(accessed_at DESC)")
}
