package report

import (
	"testing"

	"escaperoom/models"
)

func TestAggregateSingleStationFullScore(t *testing.T) {
	results := []models.StationResult{
		{UserID: 1, StationID: 1, Score: 5, TimeSpent: 75},
	}

	data := Aggregate("maria", results, nil)

	if data.TotalScore != 5 {
		t.Errorf("TotalScore = %d, want 5", data.TotalScore)
	}
	if data.AveragePercent != 100.0 {
		t.Errorf("AveragePercent = %v, want 100.0", data.AveragePercent)
	}
	if data.AchievementTier != TierGold {
		t.Errorf("AchievementTier = %q, want %q", data.AchievementTier, TierGold)
	}
	if len(data.Stations) != 1 || data.Stations[0].MaxPoints != 5 {
		t.Errorf("unexpected station lines: %+v", data.Stations)
	}
}

func TestAggregateEmptyResults(t *testing.T) {
	data := Aggregate("joao", nil, nil)

	if data.AveragePercent != 0 {
		t.Errorf("AveragePercent = %v, want 0", data.AveragePercent)
	}
	if data.AchievementTier != TierNone {
		t.Errorf("AchievementTier = %q, want %q", data.AchievementTier, TierNone)
	}
	if data.TotalScore != 0 || data.TotalTimeSeconds != 0 {
		t.Errorf("totals = (%d, %d), want zero", data.TotalScore, data.TotalTimeSeconds)
	}
}

func TestAggregateOrdersStationsAscending(t *testing.T) {
	results := []models.StationResult{
		{UserID: 1, StationID: 3, Score: 4, TimeSpent: 100},
		{UserID: 1, StationID: 1, Score: 5, TimeSpent: 75},
		{UserID: 1, StationID: 2, Score: 7, TimeSpent: 85},
	}

	data := Aggregate("maria", results, nil)

	for i, want := range []int{1, 2, 3} {
		if data.Stations[i].StationID != want {
			t.Fatalf("station order = %+v", data.Stations)
		}
	}
	if data.TotalScore != 16 {
		t.Errorf("TotalScore = %d, want 16", data.TotalScore)
	}
	if data.TotalTimeSeconds != 260 {
		t.Errorf("TotalTimeSeconds = %d, want 260", data.TotalTimeSeconds)
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		want string
	}{
		{100, TierGold},
		{85, TierGold},
		{84.99, TierSilver},
		{65, TierSilver},
		{64.99, TierBronze},
		{40, TierBronze},
		{39.99, TierNone},
		{0, TierNone},
	}

	for _, tt := range tests {
		if got := tierFor(tt.avg); got != tt.want {
			t.Errorf("tierFor(%v) = %q, want %q", tt.avg, got, tt.want)
		}
	}
}

func TestAggregateRoundsToTwoDecimals(t *testing.T) {
	// Station 2 ceiling is 7: 5/7 = 71.428571...% -> 71.43
	results := []models.StationResult{
		{UserID: 1, StationID: 2, Score: 5, TimeSpent: 60},
	}

	data := Aggregate("ana", results, nil)
	if data.AveragePercent != 71.43 {
		t.Errorf("AveragePercent = %v, want 71.43", data.AveragePercent)
	}
	if data.AchievementTier != TierSilver {
		t.Errorf("AchievementTier = %q, want %q", data.AchievementTier, TierSilver)
	}
}

func TestAggregateIncludesLatestEvaluation(t *testing.T) {
	eval := &models.Evaluation{
		ParticipantType:   "estudante",
		ParticipationType: "equipe",
		Team:              `["Ana","Bruno"]`,
		Q1:                5, Q2: 4, Q3: 5, Q4: 5,
		Q5: "Interface clara",
	}

	data := Aggregate("ana", nil, eval)
	if data.Evaluation == nil {
		t.Fatal("evaluation missing from report data")
	}
	if len(data.Evaluation.Team) != 2 || data.Evaluation.Team[0] != "Ana" {
		t.Errorf("Team = %v", data.Evaluation.Team)
	}
	if data.Evaluation.Q1 != 5 || data.Evaluation.Q5 != "Interface clara" {
		t.Errorf("evaluation fields lost: %+v", data.Evaluation)
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	results := []models.StationResult{
		{UserID: 1, StationID: 1, Score: 5, TimeSpent: 75},
		{UserID: 1, StationID: 2, Score: 6, TimeSpent: 80},
	}
	eval := &models.Evaluation{
		ParticipantType:   "profissional",
		ParticipationType: "sozinho",
		Q1:                4, Q2: 5, Q3: 4, Q4: 5,
		Q5: "Aprendizado prático",
		Q6: "Mais estações",
	}

	pdfBytes, err := RenderPDF(Aggregate("carla", results, eval))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("RenderPDF() returned an empty document")
	}
	if string(pdfBytes[:5]) != "%PDF-" {
		t.Errorf("output does not start with a PDF header: %q", pdfBytes[:5])
	}
}
