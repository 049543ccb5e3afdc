package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scriptorium/internal/models"
)

// Votes is the vote ledger plus the atomic score maintenance around it.
// Every mutation locks the owning comment row first, so two callers
// voting on the same comment serialize at the database instead of
// racing; votes on different comments never wait on each other.
type Votes struct {
	db *gorm.DB
}

func NewVotes(db *gorm.DB) *Votes {
	return &Votes{db: db}
}

// voteDelta is the score adjustment for an upsert: +v for a first vote,
// new-old (i.e. 2*v) for a changed vote, 0 for an idempotent re-vote.
func voteDelta(existing *int, next int) int {
	if existing == nil {
		return next
	}
	return next - *existing
}

// Apply upserts the caller's vote and adjusts the comment's rating score
// in the same transaction. Returns the updated comment and the caller's
// resulting vote value.
func (s *Votes) Apply(ctx context.Context, userID, commentID uint, value int) (models.Comment, *int, error) {
	if value != 1 && value != -1 {
		return models.Comment{}, nil, ErrInvalidValue
	}

	var updated models.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comment, err := lockComment(tx, commentID)
		if err != nil {
			return err
		}

		var existing models.Vote
		err = tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing).Error
		switch {
		case err == nil && existing.Value == value:
			// Same value again: no row write, no score change.
			updated = comment
			return nil
		case err == nil:
			if err := tx.Model(&existing).Update("value", value).Error; err != nil {
				return fmt.Errorf("update vote: %w", err)
			}
			return s.adjustScore(tx, commentID, voteDelta(&existing.Value, value), &updated)
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{UserID: userID, CommentID: commentID, Value: value}
			if err := tx.Create(&vote).Error; err != nil {
				return fmt.Errorf("create vote: %w", err)
			}
			return s.adjustScore(tx, commentID, voteDelta(nil, value), &updated)
		default:
			return fmt.Errorf("load vote: %w", err)
		}
	})
	if err != nil {
		return models.Comment{}, nil, wrapTxError("apply vote", err)
	}

	v := value
	return updated, &v, nil
}

// Remove deletes the caller's vote and subtracts its contribution from
// the score, again inside one transaction.
func (s *Votes) Remove(ctx context.Context, userID, commentID uint) (models.Comment, error) {
	var updated models.Comment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockComment(tx, commentID); err != nil {
			return err
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoExistingVote
		}
		if err != nil {
			return fmt.Errorf("load vote: %w", err)
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return fmt.Errorf("delete vote: %w", err)
		}
		return s.adjustScore(tx, commentID, -existing.Value, &updated)
	})
	if err != nil {
		return models.Comment{}, wrapTxError("remove vote", err)
	}
	return updated, nil
}

func lockComment(tx *gorm.DB, commentID uint) (models.Comment, error) {
	var comment models.Comment
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Author").
		First(&comment, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Comment{}, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	if err != nil {
		return models.Comment{}, fmt.Errorf("lock comment: %w", err)
	}
	return comment, nil
}

func (s *Votes) adjustScore(tx *gorm.DB, commentID uint, delta int, updated *models.Comment) error {
	err := tx.Model(&models.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("rating_score", gorm.Expr("rating_score + ?", delta)).Error
	if err != nil {
		return fmt.Errorf("adjust score: %w", err)
	}
	if err := tx.Preload("Author").First(updated, commentID).Error; err != nil {
		return fmt.Errorf("reload comment: %w", err)
	}
	return nil
}

// wrapTxError turns Postgres serialization failures into ErrConflict so
// the caller can retry; everything else passes through.
func wrapTxError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
