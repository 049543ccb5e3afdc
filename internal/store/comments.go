package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"scriptorium/internal/models"
)

// Comments is the durable comment tree: a flat table keyed by id with a
// parent-id link. Children are never stored; read paths materialize them.
type Comments struct {
	db *gorm.DB
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{db: db}
}

type CreateCommentInput struct {
	PostID   uint
	AuthorID uint
	Content  string
	ParentID *uint
}

// Create inserts a comment after validating its content and, for
// replies, that the parent exists under the same post. The parent link
// is immutable from here on, so the tree stays acyclic by construction.
func (s *Comments) Create(ctx context.Context, in CreateCommentInput) (models.Comment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return models.Comment{}, ErrEmptyContent
	}

	if in.ParentID != nil {
		var parent models.Comment
		err := s.db.WithContext(ctx).First(&parent, *in.ParentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Comment{}, fmt.Errorf("parent comment %d: %w", *in.ParentID, ErrNotFound)
		}
		if err != nil {
			return models.Comment{}, fmt.Errorf("load parent comment: %w", err)
		}
		if parent.PostID != in.PostID {
			return models.Comment{}, fmt.Errorf("parent comment %d belongs to another post: %w", *in.ParentID, ErrNotFound)
		}
	}

	comment := models.Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		ParentID: in.ParentID,
		Content:  content,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return models.Comment{}, fmt.Errorf("create comment: %w", err)
	}

	// Reload with author display fields so the caller can render the new
	// node without a second read.
	if err := s.db.WithContext(ctx).Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return models.Comment{}, fmt.Errorf("reload comment: %w", err)
	}
	return comment, nil
}

func (s *Comments) Get(ctx context.Context, id uint) (models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).Preload("Author").First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Comment{}, fmt.Errorf("comment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Comment{}, fmt.Errorf("load comment: %w", err)
	}
	return comment, nil
}

// ListTopLevel returns one page of visible top-level comments for a post
// plus the total count of visible top-level comments.
func (s *Comments) ListTopLevel(ctx context.Context, postID uint, order Order, page, perPage int) ([]models.Comment, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Comment{}).
		Where("post_id = ? AND parent_id IS NULL AND hidden = ?", postID, false).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count top-level comments: %w", err)
	}

	var comments []models.Comment
	err = s.db.WithContext(ctx).Preload("Author").
		Where("post_id = ? AND parent_id IS NULL AND hidden = ?", postID, false).
		Order(order.Clause()).
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list top-level comments: %w", err)
	}
	return comments, total, nil
}

// ListReplies batch-fetches the direct replies of every parent in one
// query. Hidden replies are filtered unless the moderation path asks for
// them. Replies come back ordered by the given criterion; per-parent
// relative order survives the later group-by-parent pass.
func (s *Comments) ListReplies(ctx context.Context, parentIDs []uint, order Order, includeHidden bool) ([]models.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	q := s.db.WithContext(ctx).Preload("Author").Where("parent_id IN ?", parentIDs)
	if !includeHidden {
		q = q.Where("hidden = ?", false)
	}

	var replies []models.Comment
	if err := q.Order(order.Clause()).Find(&replies).Error; err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}
	return replies, nil
}
