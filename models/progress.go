// models/progress.go - Unlock/score state and the attempt log
package models

import (
	"time"

	"escaperoom/game"
)

// UserProgress is the single mutable progress row of a user. It is
// created lazily with defaults on first access and only ever moves
// forward: keys are never removed, totals never decrease, and the
// challenge pointer never moves back.
type UserProgress struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;uniqueIndex" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	CurrentChallengeID int    `gorm:"not null;default:1" json:"current_challenge_id"`
	TotalScore         int    `gorm:"not null;default:0" json:"total_score"`
	TotalTimeSeconds   int    `gorm:"not null;default:0" json:"total_time_seconds"`
	EarnedKeys         string `gorm:"type:text;not null;default:'[]'" json:"-"`
}

// Keys decodes the stored earned-key set. A corrupt column yields an
// empty set rather than an error; the chain then simply re-locks.
func (p *UserProgress) Keys() game.KeySet {
	ks, err := game.ParseKeySet(p.EarnedKeys)
	if err != nil {
		return game.KeySet{}
	}
	return ks
}

// ApplyCompletion folds a successful station completion into the
// progress row: the key reward is granted (idempotently), score and time
// accumulate, and the challenge pointer advances only when the completed
// station is the one it currently points at.
func (p *UserProgress) ApplyCompletion(ch *game.Challenge, score, timeSpent int) {
	keys := p.Keys()
	keys.Add(ch.KeyReward)
	p.EarnedKeys = keys.Encode()

	p.TotalScore += score
	p.TotalTimeSeconds += timeSpent

	if p.CurrentChallengeID == ch.ID {
		p.CurrentChallengeID = ch.ID + 1
	}
}

// Attempt status values. An attempt is appended as "started" and flipped
// to "completed" at most once; dangling started rows are abandoned.
const (
	AttemptStatusStarted   = "started"
	AttemptStatusCompleted = "completed"
)

// ChallengeAttempt is an append-only log of station starts and
// completions. Scoring only ever reflects the station_results row, not
// this log.
type ChallengeAttempt struct {
	ID          uint  `gorm:"primaryKey" json:"id"`
	UserID      uint  `gorm:"not null;index" json:"user_id"`
	User        *User `gorm:"foreignKey:UserID" json:"-"`
	ChallengeID int   `gorm:"not null;index" json:"challenge_id"`

	Status           string `gorm:"not null;size:20;default:'started'" json:"status"`
	Score            int    `gorm:"default:0" json:"score"`
	TimeSpentSeconds int    `gorm:"default:0" json:"time_spent_seconds"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

func (ChallengeAttempt) TableName() string {
	return "challenge_attempts"
}
