// models/result.go - Station results (upsert) and evaluations (append-only)
package models

import (
	"encoding/json"
	"time"
)

// StationResult keeps exactly one row per (user, station). Resubmissions
// overwrite score, time and timestamp; the composite unique index is the
// backstop against concurrent duplicates.
type StationResult struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    uint  `gorm:"not null;uniqueIndex:uq_user_station" json:"user_id"`
	User      *User `gorm:"foreignKey:UserID" json:"-"`
	StationID int   `gorm:"not null;uniqueIndex:uq_user_station" json:"station_id"`

	Score       int       `gorm:"not null" json:"score"`
	TimeSpent   int       `gorm:"not null" json:"time_spent"` // seconds
	CompletedAt time.Time `json:"completed_at"`
}

// Evaluation is the platform feedback form. Rows are only ever appended;
// reporting reads the most recent one per user.
type Evaluation struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID uint  `gorm:"not null;index" json:"user_id"`
	User   *User `gorm:"foreignKey:UserID" json:"-"`

	ParticipantType   string `gorm:"not null;size:50" json:"participant_type"`   // estudante/profissional/professor
	ParticipationType string `gorm:"not null;size:20" json:"participation_type"` // sozinho/equipe
	Team              string `gorm:"type:text" json:"-"`                         // JSON list of member names

	Q1 int    `gorm:"not null" json:"q1"` // facilidade de uso
	Q2 int    `gorm:"not null" json:"q2"` // aprendizado
	Q3 int    `gorm:"not null" json:"q3"` // design/interface
	Q4 int    `gorm:"not null" json:"q4"` // recomendação
	Q5 string `gorm:"type:text" json:"q5,omitempty"` // pontos fortes
	Q6 string `gorm:"type:text" json:"q6,omitempty"` // pontos de melhoria

	CreatedAt time.Time `json:"created_at"`
}

// TeamMembers decodes the stored team list. Legacy rows that hold a bare
// name instead of a JSON array come back as a single-element list.
func (e *Evaluation) TeamMembers() []string {
	if e.Team == "" {
		return nil
	}
	var members []string
	if err := json.Unmarshal([]byte(e.Team), &members); err != nil {
		return []string{e.Team}
	}
	return members
}

func (StationResult) TableName() string {
	return "station_results"
}

func (Evaluation) TableName() string {
	return "evaluations"
}
