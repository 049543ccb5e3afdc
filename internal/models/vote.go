package models

import (
	"time"
)

// Vote is one user's live vote on one comment. The (user_id, comment_id)
// unique index is what makes re-voting an update instead of a second row;
// absence of a row means "no vote", a zero value is never stored.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_vote_user_comment" json:"user_id"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_vote_user_comment;index" json:"comment_id"`
	Value     int       `gorm:"not null" json:"value"` // 1 or -1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
