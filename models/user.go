// models/user.go
package models

import (
	"time"
)

type User struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Username   string  `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email      *string `gorm:"uniqueIndex;size:100" json:"email,omitempty"`
	Password   string  `gorm:"not null" json:"-"`
	Profession string  `gorm:"size:50" json:"profession"`
	Country    string  `gorm:"size:50" json:"country"`
	Language   string  `gorm:"size:5;default:'pt'" json:"language"`
	VisitorID  string  `gorm:"uniqueIndex;size:36" json:"visitor_id,omitempty"`
	IsActive   bool    `gorm:"default:true" json:"is_active"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Progress *UserProgress      `gorm:"foreignKey:UserID" json:"progress,omitempty"`
	Attempts []ChallengeAttempt `gorm:"foreignKey:UserID" json:"attempts,omitempty"`
	Results  []StationResult    `gorm:"foreignKey:UserID" json:"results,omitempty"`
}

func (User) TableName() string {
	return "users"
}
