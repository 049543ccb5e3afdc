package services

import (
	"context"
	"errors"

	"scriptorium/internal/models"
	"scriptorium/internal/store"
)

type VoteLedger interface {
	Apply(ctx context.Context, userID, commentID uint, value int) (models.Comment, *int, error)
	Remove(ctx context.Context, userID, commentID uint) (models.Comment, error)
}

// ReputationService fronts the vote ledger: validates vote values,
// retries a serialization conflict once, and shapes the response so the
// caller sees both the new score and its own vote state.
type ReputationService struct {
	votes VoteLedger
}

func NewReputationService(votes VoteLedger) *ReputationService {
	return &ReputationService{votes: votes}
}

// Cast is an upsert: first vote, changed vote, or an idempotent re-vote
// with the same value.
func (s *ReputationService) Cast(ctx context.Context, userID, commentID uint, value int) (CommentNode, error) {
	if value != 1 && value != -1 {
		return CommentNode{}, store.ErrInvalidValue
	}

	comment, viewerVote, err := s.votes.Apply(ctx, userID, commentID, value)
	if errors.Is(err, store.ErrConflict) {
		comment, viewerVote, err = s.votes.Apply(ctx, userID, commentID, value)
	}
	if err != nil {
		return CommentNode{}, err
	}

	node := newNode(comment)
	node.ViewerVote = viewerVote
	return node, nil
}

// Remove deletes the caller's vote; the returned node carries no viewer
// vote, which is the cleared button state.
func (s *ReputationService) Remove(ctx context.Context, userID, commentID uint) (CommentNode, error) {
	comment, err := s.votes.Remove(ctx, userID, commentID)
	if errors.Is(err, store.ErrConflict) {
		comment, err = s.votes.Remove(ctx, userID, commentID)
	}
	if err != nil {
		return CommentNode{}, err
	}
	return newNode(comment), nil
}
