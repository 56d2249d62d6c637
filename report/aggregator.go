// report/aggregator.go - Performance report aggregation
//
// Pure reduction of a user's station results plus the latest evaluation
// into the structure the renderers consume. No layout happens here.
package report

import (
	"math"
	"sort"

	"escaperoom/game"
	"escaperoom/models"
)

// Achievement tiers, banded on the average percentage across completed
// stations. Evaluated top-down, first match wins.
const (
	TierGold   = "Ouro"
	TierSilver = "Prata"
	TierBronze = "Bronze"
	TierNone   = "—"
)

type StationLine struct {
	StationID int    `json:"station_id"`
	Title     string `json:"title"`
	Score     int    `json:"score"`
	MaxPoints int    `json:"max_points"`
	TimeSpent int    `json:"time_spent"`
}

type EvaluationSummary struct {
	ParticipantType   string   `json:"participant_type"`
	ParticipationType string   `json:"participation_type"`
	Team              []string `json:"team,omitempty"`
	Q1                int      `json:"q1"`
	Q2                int      `json:"q2"`
	Q3                int      `json:"q3"`
	Q4                int      `json:"q4"`
	Q5                string   `json:"q5,omitempty"`
	Q6                string   `json:"q6,omitempty"`
}

type ReportData struct {
	Username         string             `json:"username"`
	Stations         []StationLine      `json:"stations"`
	TotalScore       int                `json:"total_score"`
	TotalTimeSeconds int                `json:"total_time_seconds"`
	AveragePercent   float64            `json:"average_percent"`
	AchievementTier  string             `json:"achievement_tier"`
	Evaluation       *EvaluationSummary `json:"evaluation,omitempty"`
}

// Aggregate reduces the stored station results and the latest evaluation
// of a user. The average percentage only counts stations the user has
// actually completed; with no results it is zero.
func Aggregate(username string, results []models.StationResult, eval *models.Evaluation) ReportData {
	data := ReportData{
		Username:        username,
		Stations:        make([]StationLine, 0, len(results)),
		AchievementTier: TierNone,
	}

	totalMax := 0
	for _, r := range results {
		line := StationLine{
			StationID: r.StationID,
			Score:     r.Score,
			MaxPoints: game.MaxPoints(r.StationID),
			TimeSpent: r.TimeSpent,
		}
		if ch, ok := game.GetChallenge(r.StationID); ok {
			line.Title = ch.Title
		}
		data.Stations = append(data.Stations, line)

		data.TotalScore += r.Score
		data.TotalTimeSeconds += r.TimeSpent
		totalMax += line.MaxPoints
	}

	sort.Slice(data.Stations, func(i, j int) bool {
		return data.Stations[i].StationID < data.Stations[j].StationID
	})

	if totalMax > 0 {
		data.AveragePercent = round2(float64(data.TotalScore) / float64(totalMax) * 100)
	}
	data.AchievementTier = tierFor(data.AveragePercent)

	if eval != nil {
		data.Evaluation = &EvaluationSummary{
			ParticipantType:   eval.ParticipantType,
			ParticipationType: eval.ParticipationType,
			Team:              eval.TeamMembers(),
			Q1:                eval.Q1,
			Q2:                eval.Q2,
			Q3:                eval.Q3,
			Q4:                eval.Q4,
			Q5:                eval.Q5,
			Q6:                eval.Q6,
		}
	}

	return data
}

func tierFor(avgPercent float64) string {
	switch {
	case avgPercent >= 85:
		return TierGold
	case avgPercent >= 65:
		return TierSilver
	case avgPercent >= 40:
		return TierBronze
	default:
		return TierNone
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
