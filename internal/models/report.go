package models

import (
	"time"
)

// Report rows are append-only; a user may report the same comment more
// than once and the moderation listing counts raw rows.
type Report struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CommentID  uint      `gorm:"not null;index" json:"comment_id"`
	Comment    Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ReporterID uint      `gorm:"not null;index" json:"reporter_id"`
	Reporter   User      `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Reason     string    `gorm:"size:200;not null" json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}
