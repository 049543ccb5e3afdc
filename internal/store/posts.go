package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"scriptorium/internal/models"
)

// Posts only answers the content-existence question the comment engine
// needs; the publishing workflow itself lives in another service.
type Posts struct {
	db *gorm.DB
}

func NewPosts(db *gorm.DB) *Posts {
	return &Posts{db: db}
}

// GetPublished fails NotFound for missing and unpublished posts alike.
func (s *Posts) GetPublished(ctx context.Context, id uint) (models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).Where("id = ? AND published = ?", id, true).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Post{}, fmt.Errorf("post %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("load post: %w", err)
	}
	return post, nil
}
