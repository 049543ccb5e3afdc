package models

import (
	"time"
)

type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	PostID   uint     `gorm:"not null;index" json:"post_id"`
	Post     Post     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	AuthorID uint     `gorm:"not null;index" json:"author_id"`
	Author   User     `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	ParentID *uint    `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent   *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	// Derived column: always equals the sum of live vote values for this
	// comment. Written only inside the vote transaction in store.Votes.
	RatingScore int       `gorm:"not null;default:0" json:"rating_score"`
	Hidden      bool      `gorm:"not null;default:false;index" json:"hidden"`
	CreatedAt   time.Time `json:"created_at"`

	// Filled by moderation queries, not stored.
	ReportCount int `gorm:"-" json:"report_count,omitempty"`
}
