package services

import (
	"context"
	"fmt"
	"time"

	"scriptorium/internal/cache"
	"scriptorium/internal/models"
	"scriptorium/internal/store"
)

type CommentCreator interface {
	Create(ctx context.Context, in store.CreateCommentInput) (models.Comment, error)
}

type PostFinder interface {
	GetPublished(ctx context.Context, id uint) (models.Post, error)
}

// CommentService handles comment creation: confirms the parent content
// exists and is published, then delegates to the comment store.
type CommentService struct {
	comments CommentCreator
	posts    PostFinder
	cache    *cache.Cache
}

func NewCommentService(comments CommentCreator, posts PostFinder, c *cache.Cache) *CommentService {
	return &CommentService{comments: comments, posts: posts, cache: c}
}

func (s *CommentService) Create(ctx context.Context, postID, authorID uint, content string, parentID *uint) (CommentNode, error) {
	if _, err := s.publishedPost(ctx, postID); err != nil {
		return CommentNode{}, err
	}

	comment, err := s.comments.Create(ctx, store.CreateCommentInput{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
		ParentID: parentID,
	})
	if err != nil {
		return CommentNode{}, err
	}
	return newNode(comment), nil
}

// publishedPost is a read-through cache over the content-existence
// check; post rows change rarely compared to how often comments arrive.
func (s *CommentService) publishedPost(ctx context.Context, id uint) (models.Post, error) {
	key := fmt.Sprintf("post:published:%d", id)
	if cached := s.cache.Get(key); cached != nil {
		if post, ok := cached.(models.Post); ok {
			return post, nil
		}
	}

	post, err := s.posts.GetPublished(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	s.cache.Set(key, post, 1*time.Minute)
	return post, nil
}
