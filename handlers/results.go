// handlers/results.go - Station result recording (upsert per user/station)
package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"

	"escaperoom/database"
	"escaperoom/game"
	"escaperoom/middleware"
	"escaperoom/models"
)

type StationResultRequest struct {
	StationID *int `json:"station_id"`
	Score     *int `json:"score"`
	TimeSpent *int `json:"time_spent"`
}

// SaveStationResult upserts the single result row per (user, station).
// The insert-or-update races under concurrent retries; the composite
// unique index plus ON CONFLICT keeps it to one row with the latest
// values.
func SaveStationResult(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	var req StationResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	// score and time_spent may be zero, so presence is checked, not value
	if req.StationID == nil || req.Score == nil || req.TimeSpent == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Dados incompletos"})
	}

	if _, ok := game.GetChallenge(*req.StationID); !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Unknown station"})
	}

	result := models.StationResult{
		UserID:      userID,
		StationID:   *req.StationID,
		Score:       *req.Score,
		TimeSpent:   *req.TimeSpent,
		CompletedAt: time.Now().UTC(),
	}

	db := database.GetDB()
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "station_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "time_spent", "completed_at"}),
	}).Create(&result).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save result"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetStationResults returns the per-station score/time map and the total
func GetStationResults(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	db := database.GetDB()
	var results []models.StationResult
	if err := db.Where("user_id = ?", userID).Order("station_id ASC").Find(&results).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load results"})
	}

	stations := make(map[int]fiber.Map, len(results))
	totalScore := 0
	for _, r := range results {
		stations[r.StationID] = fiber.Map{
			"score":      r.Score,
			"time_spent": r.TimeSpent,
		}
		totalScore += r.Score
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"stations":    stations,
		"total_score": totalScore,
	})
}
