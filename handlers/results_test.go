package handlers

import (
	"net/http"
	"sync"
	"testing"

	"escaperoom/database"
	"escaperoom/models"
)

func TestSaveStationResultUpsertKeepsOneRow(t *testing.T) {
	app := setupTestApp(t)
	token := createTestUser(t, app, "maria")

	first := map[string]interface{}{"station_id": 1, "score": 3, "time_spent": 120}
	resp := doRequest(t, app, http.MethodPost, "/api/station_result", token, first)
	if resp.StatusCode != 200 {
		t.Fatalf("first save returned status %d", resp.StatusCode)
	}
	resp.Body.Close()

	second := map[string]interface{}{"station_id": 1, "score": 5, "time_spent": 90}
	resp = doRequest(t, app, http.MethodPost, "/api/station_result", token, second)
	if resp.StatusCode != 200 {
		t.Fatalf("second save returned status %d", resp.StatusCode)
	}
	resp.Body.Close()

	var rows []models.StationResult
	if err := database.GetDB().Find(&rows).Error; err != nil {
		t.Fatalf("failed to load rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows for (user, station), want 1", len(rows))
	}
	if rows[0].Score != 5 || rows[0].TimeSpent != 90 {
		t.Errorf("row holds (%d, %d), want latest values (5, 90)", rows[0].Score, rows[0].TimeSpent)
	}
}

func TestSaveStationResultConcurrentDuplicates(t *testing.T) {
	app := setupTestApp(t)
	token := createTestUser(t, app, "joao")

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(score int) {
			defer wg.Done()
			body := map[string]interface{}{"station_id": 3, "score": score, "time_spent": 60}
			resp := doRequest(t, app, http.MethodPost, "/api/station_result", token, body)
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	var count int64
	err := database.GetDB().Model(&models.StationResult{}).
		Where("station_id = ?", 3).Count(&count).Error
	if err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("concurrent writers produced %d rows, want 1", count)
	}
}

func TestSaveStationResultValidation(t *testing.T) {
	app := setupTestApp(t)
	token := createTestUser(t, app, "ana")

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{"missing station_id", map[string]interface{}{"score": 5, "time_spent": 60}, 400},
		{"missing score", map[string]interface{}{"station_id": 1, "time_spent": 60}, 400},
		{"missing time_spent", map[string]interface{}{"station_id": 1, "score": 5}, 400},
		{"unknown station", map[string]interface{}{"station_id": 99, "score": 5, "time_spent": 60}, 404},
		{"zero score is valid", map[string]interface{}{"station_id": 1, "score": 0, "time_spent": 0}, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, "/api/station_result", token, tt.body)
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestGetStationResultsTotals(t *testing.T) {
	app := setupTestApp(t)
	token := createTestUser(t, app, "carla")

	for _, r := range []map[string]interface{}{
		{"station_id": 1, "score": 5, "time_spent": 75},
		{"station_id": 2, "score": 6, "time_spent": 110},
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/station_result", token, r)
		resp.Body.Close()
	}

	resp := doRequest(t, app, http.MethodGet, "/api/get_station_results", token, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var out struct {
		Success    bool `json:"success"`
		TotalScore int  `json:"total_score"`
		Stations   map[string]struct {
			Score     int `json:"score"`
			TimeSpent int `json:"time_spent"`
		} `json:"stations"`
	}
	decodeBody(t, resp, &out)

	if !out.Success {
		t.Error("success = false")
	}
	if out.TotalScore != 11 {
		t.Errorf("total_score = %d, want 11", out.TotalScore)
	}
	if len(out.Stations) != 2 {
		t.Fatalf("stations = %v, want 2 entries", out.Stations)
	}
	if st := out.Stations["1"]; st.Score != 5 || st.TimeSpent != 75 {
		t.Errorf("station 1 = %+v", st)
	}
}
