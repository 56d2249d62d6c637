// handlers/game.go - Progression endpoints for the escape room
package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escaperoom/database"
	"escaperoom/game"
	"escaperoom/middleware"
	"escaperoom/models"
)

type StartChallengeRequest struct {
	ChallengeID int `json:"challenge_id"`
}

type CompleteChallengeRequest struct {
	ChallengeID int    `json:"challenge_id"`
	Score       int    `json:"score"`
	TimeSpent   int    `json:"time_spent"`
	KeyEarned   string `json:"key_earned"`
}

type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}

// getOrCreateProgress loads the progress row of a user, creating it with
// defaults on first access.
func getOrCreateProgress(db *gorm.DB, userID uint) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := db.Where("user_id = ?", userID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	progress = models.UserProgress{
		UserID:             userID,
		CurrentChallengeID: 1,
		EarnedKeys:         "[]",
	}
	if err := db.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// GetProgress returns the user's unlock pointer, earned keys and totals
func GetProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	db := database.GetDB()
	progress, err := getOrCreateProgress(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load progress"})
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"current_challenge_id": progress.CurrentChallengeID,
		"earned_keys":          progress.Keys().List(),
		"total_score":          progress.TotalScore,
		"total_time_seconds":   progress.TotalTimeSeconds,
	})
}

// StartChallenge validates access and appends a started attempt
func StartChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	var req StartChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body. Expected JSON."})
	}

	ch, ok := game.GetChallenge(req.ChallengeID)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	db := database.GetDB()
	progress, err := getOrCreateProgress(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load progress"})
	}

	if !game.CanAccess(ch.ID, progress.Keys()) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Required key not found"})
	}

	attempt := models.ChallengeAttempt{
		UserID:      userID,
		ChallengeID: ch.ID,
		Status:      models.AttemptStatusStarted,
		StartedAt:   time.Now().UTC(),
	}
	if err := db.Create(&attempt).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to record attempt"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Challenge %d started.", ch.ID),
	})
}

// CompleteChallenge records a completion: the most recent dangling
// started attempt (if any) is closed, and the progress row absorbs the
// score, time and key reward in one transaction.
func CompleteChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	var req CompleteChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request"})
	}

	// key_earned may legitimately be empty for a failed station; only the
	// challenge id is structurally required.
	if req.ChallengeID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Missing required data"})
	}

	ch, ok := game.GetChallenge(req.ChallengeID)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	db := database.GetDB()
	progress, err := getOrCreateProgress(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load progress"})
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Close the most recent open attempt; older dangling rows stay as-is.
	var attempt models.ChallengeAttempt
	err = tx.Where("user_id = ? AND challenge_id = ? AND status = ?", userID, ch.ID, models.AttemptStatusStarted).
		Order("started_at DESC").
		First(&attempt).Error
	if err == nil {
		now := time.Now().UTC()
		attempt.Status = models.AttemptStatusCompleted
		attempt.Score = req.Score
		attempt.TimeSpentSeconds = req.TimeSpent
		attempt.CompletedAt = &now
		if err := tx.Save(&attempt).Error; err != nil {
			tx.Rollback()
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update attempt"})
		}
	} else if err != gorm.ErrRecordNotFound {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load attempt"})
	}

	progress.ApplyCompletion(ch, req.Score, req.TimeSpent)
	if err := tx.Save(progress).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save progress"})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to commit transaction"})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"message":           "Challenge completed and progress saved.",
		"new_key_earned":    ch.KeyReward,
		"next_challenge_id": progress.CurrentChallengeID,
	})
}

// GetChallengePayload returns the challenge definition with the correct
// answers stripped, provided the user has unlocked it
func GetChallengePayload(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	ch, ok := game.GetChallenge(challengeID)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Challenge not found"})
	}

	db := database.GetDB()
	progress, err := getOrCreateProgress(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load progress"})
	}

	if !game.CanAccess(ch.ID, progress.Keys()) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Challenge locked"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"challenge": ch.WithoutAnswers(),
	})
}

// SubmitAnswers grades a quiz station on the server. Stations without
// per-question correctness (ordering, memory, matching, wordsearch,
// puzzle) are scored by the client and reported via challenge/complete.
func SubmitAnswers(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	challengeID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid challenge ID"})
	}

	var req SubmitAnswersRequest
	if err := c.BodyParser(&req); err != nil || req.Answers == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	ch, ok := game.GetChallenge(challengeID)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Challenge not found"})
	}

	db := database.GetDB()
	progress, err := getOrCreateProgress(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load progress"})
	}

	if !game.CanAccess(ch.ID, progress.Keys()) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Challenge locked"})
	}

	result, err := game.ScoreQuiz(ch, req.Answers)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"result":  result,
	})
}

// GetChallenges lists the full catalog without answers, with per-station
// lock state for the authenticated user
func GetChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	db := database.GetDB()
	progress, err := getOrCreateProgress(db, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load progress"})
	}

	keys := progress.Keys()
	type listedChallenge struct {
		game.Challenge
		Unlocked bool `json:"unlocked"`
	}

	list := make([]listedChallenge, 0, game.ChallengeCount())
	for _, ch := range game.Challenges() {
		list = append(list, listedChallenge{
			Challenge: ch.WithoutAnswers(),
			Unlocked:  game.CanAccess(ch.ID, keys),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": list,
	})
}
