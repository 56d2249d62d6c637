// handlers/report.go - PDF performance report download
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escaperoom/database"
	"escaperoom/middleware"
	"escaperoom/models"
	"escaperoom/report"
)

// GenerateReport aggregates the user's station results and latest
// evaluation and streams them as a PDF attachment
func GenerateReport(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Authentication required"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
	}

	var results []models.StationResult
	if err := db.Where("user_id = ?", userID).Order("station_id ASC").Find(&results).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load results"})
	}

	var evaluation *models.Evaluation
	var latest models.Evaluation
	err = db.Where("user_id = ?", userID).Order("created_at DESC").First(&latest).Error
	if err == nil {
		evaluation = &latest
	} else if err != gorm.ErrRecordNotFound {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load evaluation"})
	}

	data := report.Aggregate(user.Username, results, evaluation)

	pdfBytes, err := report.RenderPDF(data)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate report"})
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", "attachment; filename=relatorio.pdf")
	return c.Send(pdfBytes)
}
