// handlers/evaluation.go - Platform feedback form (append-only)
package handlers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"escaperoom/database"
	"escaperoom/middleware"
	"escaperoom/models"
)

type EvaluationRequest struct {
	ParticipantType   string   `json:"participantType"`
	ParticipationType string   `json:"participationType"`
	Team              []string `json:"team"`
	Q1                *int     `json:"q1"`
	Q2                *int     `json:"q2"`
	Q3                *int     `json:"q3"`
	Q4                *int     `json:"q4"`
	Q5                string   `json:"q5"`
	Q6                string   `json:"q6"`
}

// SaveEvaluation appends a feedback record. Evaluations are never
// updated; the report picks the most recent one.
func SaveEvaluation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	var req EvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.ParticipantType == "" || req.ParticipationType == "" ||
		req.Q1 == nil || req.Q2 == nil || req.Q3 == nil || req.Q4 == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Dados incompletos"})
	}

	teamJSON, err := json.Marshal(req.Team)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team list"})
	}

	evaluation := models.Evaluation{
		UserID:            userID,
		ParticipantType:   req.ParticipantType,
		ParticipationType: req.ParticipationType,
		Team:              string(teamJSON),
		Q1:                *req.Q1,
		Q2:                *req.Q2,
		Q3:                *req.Q3,
		Q4:                *req.Q4,
		Q5:                req.Q5,
		Q6:                req.Q6,
		CreatedAt:         time.Now().UTC(),
	}

	db := database.GetDB()
	if err := db.Create(&evaluation).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save evaluation"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Avaliação salva com sucesso!",
	})
}
