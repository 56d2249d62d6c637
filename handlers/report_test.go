package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestGenerateReportStreamsPDF(t *testing.T) {
	app := setupTestApp(t)
	token := createTestUser(t, app, "maria")

	for _, r := range []map[string]interface{}{
		{"station_id": 1, "score": 5, "time_spent": 75},
		{"station_id": 2, "score": 7, "time_spent": 110},
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/station_result", token, r)
		resp.Body.Close()
	}

	resp := doRequest(t, app, http.MethodPost, "/api/save_evaluation", token, map[string]interface{}{
		"participantType":   "estudante",
		"participationType": "sozinho",
		"q1":                5, "q2": 4, "q3": 5, "q4": 5,
	})
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/generate_report", token, nil)
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "relatorio.pdf") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	if len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response body is not a PDF document")
	}
}

func TestGenerateReportWithNoData(t *testing.T) {
	app := setupTestApp(t)
	token := createTestUser(t, app, "joao")

	// A user who played nothing still gets a report, with empty progress.
	resp := doRequest(t, app, http.MethodGet, "/api/generate_report", token, nil)
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
