package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"scriptorium/internal/models"
)

// Reports backs the moderation gate: append-only report rows, the
// reported-comments listing, and the hidden flag. This is the only read
// path that may see hidden comments.
type Reports struct {
	db *gorm.DB
}

func NewReports(db *gorm.DB) *Reports {
	return &Reports{db: db}
}

// Create appends a report row. Reporting an already-hidden comment is
// allowed; moderators still want the signal.
func (s *Reports) Create(ctx context.Context, commentID, reporterID uint, reason string) (models.Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return models.Report{}, ErrEmptyReason
	}

	var comment models.Comment
	err := s.db.WithContext(ctx).First(&comment, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Report{}, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	if err != nil {
		return models.Report{}, fmt.Errorf("load comment: %w", err)
	}

	report := models.Report{
		CommentID:  commentID,
		ReporterID: reporterID,
		Reason:     reason,
	}
	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		return models.Report{}, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// ListReported pages through comments that have at least one report,
// most-reported first, newest first within a count. Hidden comments are
// included; counts are raw report rows, not distinct reporters.
func (s *Reports) ListReported(ctx context.Context, page, perPage int) ([]models.Comment, int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.Report{}).
		Distinct("comment_id").
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("count reported comments: %w", err)
	}

	type reportCount struct {
		CommentID uint
		Count     int
	}
	var rows []reportCount
	err = s.db.WithContext(ctx).Model(&models.Report{}).
		Select("reports.comment_id, COUNT(reports.id) AS count").
		Joins("JOIN comments ON comments.id = reports.comment_id").
		Group("reports.comment_id, comments.created_at").
		Order("count DESC, comments.created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list reported comments: %w", err)
	}
	if len(rows) == 0 {
		return nil, total, nil
	}

	ids := make([]uint, len(rows))
	counts := make(map[uint]int, len(rows))
	for i, r := range rows {
		ids[i] = r.CommentID
		counts[r.CommentID] = r.Count
	}

	var comments []models.Comment
	err = s.db.WithContext(ctx).Preload("Author").Where("id IN ?", ids).Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("load reported comments: %w", err)
	}

	// Restore the count ordering lost by the IN query.
	byID := make(map[uint]models.Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}
	ordered := make([]models.Comment, 0, len(rows))
	for _, r := range rows {
		c, ok := byID[r.CommentID]
		if !ok {
			continue
		}
		c.ReportCount = counts[c.ID]
		ordered = append(ordered, c)
	}
	return ordered, total, nil
}

// Hide marks a comment invisible to all standard read paths. Hiding an
// already-hidden comment succeeds and returns the unchanged state; there
// is no unhide.
func (s *Reports) Hide(ctx context.Context, commentID uint) (models.Comment, error) {
	var comment models.Comment
	err := s.db.WithContext(ctx).Preload("Author").First(&comment, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Comment{}, fmt.Errorf("comment %d: %w", commentID, ErrNotFound)
	}
	if err != nil {
		return models.Comment{}, fmt.Errorf("load comment: %w", err)
	}
	if comment.Hidden {
		return comment, nil
	}

	err = s.db.WithContext(ctx).Model(&comment).UpdateColumn("hidden", true).Error
	if err != nil {
		return models.Comment{}, fmt.Errorf("hide comment: %w", err)
	}
	comment.Hidden = true
	return comment, nil
}
