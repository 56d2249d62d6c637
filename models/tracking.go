// models/tracking.go
package models

import "time"

// PageView is the access log appended by the tracking middleware. IP
// addresses are stored as truncated SHA-256 hashes, never raw.
type PageView struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    *uint  `gorm:"index" json:"user_id,omitempty"`
	VisitorID string `gorm:"not null;size:36;index" json:"visitor_id"`
	PageURL   string `gorm:"not null;size:200" json:"page_url"`
	PageTitle string `gorm:"size:100" json:"page_title"`
	Language  string `gorm:"size:5" json:"language"`
	IPAddress string `gorm:"size:45" json:"-"`
	UserAgent string `gorm:"type:text" json:"-"`

	AccessedAt time.Time `json:"accessed_at"`
}

func (PageView) TableName() string {
	return "page_views"
}
