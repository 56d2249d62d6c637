package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"escaperoom/database"
	"escaperoom/middleware"
	"escaperoom/models"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret-key-for-handlers-0123456789")
	os.Exit(m.Run())
}

// setupTestApp wires the routes against a fresh in-memory SQLite
// database. One open connection keeps concurrent test writers from
// tripping SQLITE_BUSY.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := conn.AutoMigrate(
		&models.User{},
		&models.UserProgress{},
		&models.ChallengeAttempt{},
		&models.StationResult{},
		&models.Evaluation{},
		&models.PageView{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	database.SetDB(conn)
	t.Cleanup(func() { sqlDB.Close() })

	app := fiber.New()

	auth := app.Group("/api/auth")
	auth.Post("/register", Register)
	auth.Post("/login", Login)

	api := app.Group("/api", middleware.AuthMiddleware)
	api.Get("/users/me", GetCurrentUser)
	api.Get("/game/progress", GetProgress)
	api.Get("/game/challenges", GetChallenges)
	api.Get("/game/challenge/:id", GetChallengePayload)
	api.Post("/game/challenge/:id/answers", SubmitAnswers)
	api.Post("/game/challenge/start", StartChallenge)
	api.Post("/game/challenge/complete", CompleteChallenge)
	api.Post("/station_result", SaveStationResult)
	api.Get("/get_station_results", GetStationResults)
	api.Post("/save_evaluation", SaveEvaluation)
	api.Get("/generate_report", GenerateReport)

	return app
}

// createTestUser registers a user straight through the handler and
// returns the bearer token from the response.
func createTestUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	body := map[string]string{
		"username":   username,
		"email":      username + "@example.com",
		"password":   "senha123",
		"profession": "enfermeiro",
		"country":    "Brasil",
	}

	resp := doRequest(t, app, http.MethodPost, "/api/auth/register", "", body)
	if resp.StatusCode != 200 {
		t.Fatalf("register returned status %d", resp.StatusCode)
	}

	var out AuthResponse
	decodeBody(t, resp, &out)
	if out.Token == "" {
		t.Fatal("register returned no token")
	}
	return out.Token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}
