// middleware/tracking.go - Page-view access log
package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"escaperoom/database"
	"escaperoom/models"
)

const visitorCookie = "visitor_id"

// TrackingMiddleware appends a page_views row for every request. A
// visitor cookie identifies anonymous sessions; the authenticated user
// id is attached when the auth middleware already ran. Tracking failures
// never block the request.
func TrackingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		visitorID := c.Cookies(visitorCookie)
		if visitorID == "" {
			visitorID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     visitorCookie,
				Value:    visitorID,
				Expires:  time.Now().Add(7 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: "Lax",
			})
		}

		err := c.Next()

		var userID *uint
		if id, uidErr := GetUserID(c); uidErr == nil {
			userID = &id
		}

		view := models.PageView{
			UserID:     userID,
			VisitorID:  visitorID,
			PageURL:    truncate(c.OriginalURL(), 200),
			PageTitle:  truncate(c.Route().Path, 100),
			Language:   truncate(c.Get("Accept-Language"), 5),
			IPAddress:  hashIP(c.IP()),
			UserAgent:  truncate(c.Get("User-Agent"), 500),
			AccessedAt: time.Now().UTC(),
		}

		if dbErr := database.GetDB().Create(&view).Error; dbErr != nil {
			log.Printf("Error tracking access: %v", dbErr)
		}

		return err
	}
}

func hashIP(ip string) string {
	if ip == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])[:45]
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
