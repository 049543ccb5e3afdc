package services

import (
	"html/template"
	"math"
	"time"

	"scriptorium/internal/models"
	"scriptorium/internal/utils"
)

type Author struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// CommentNode is the wire shape of a comment: stored fields plus the
// rendered body, author display fields and materialized replies.
type CommentNode struct {
	ID          uint          `json:"id"`
	PostID      uint          `json:"post_id"`
	ParentID    *uint         `json:"parent_id"`
	Author      Author        `json:"author"`
	Content     string        `json:"content"`
	ContentHTML template.HTML `json:"content_html"`
	RatingScore int           `json:"rating_score"`
	Hidden      bool          `json:"hidden"`
	CreatedAt   time.Time     `json:"created_at"`
	ReportCount int           `json:"report_count,omitempty"`
	// ViewerVote is the caller's own live vote (+1/-1), only set on vote
	// responses so the client can render its button state directly.
	ViewerVote *int          `json:"viewer_vote,omitempty"`
	Replies    []CommentNode `json:"replies"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

type Forest struct {
	Comments   []CommentNode `json:"comments"`
	Pagination Pagination    `json:"pagination"`
}

func newNode(c models.Comment) CommentNode {
	return CommentNode{
		ID:       c.ID,
		PostID:   c.PostID,
		ParentID: c.ParentID,
		Author: Author{
			ID:       c.Author.ID,
			Username: c.Author.Username,
		},
		Content:     c.Content,
		ContentHTML: utils.RenderMarkdown(c.Content),
		RatingScore: c.RatingScore,
		Hidden:      c.Hidden,
		CreatedAt:   c.CreatedAt,
		ReportCount: c.ReportCount,
		Replies:     []CommentNode{},
	}
}

func totalPages(total int64, perPage int) int {
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	if pages == 0 {
		pages = 1
	}
	return pages
}
