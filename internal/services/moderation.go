package services

import (
	"context"

	"scriptorium/internal/models"
)

type ReportStore interface {
	Create(ctx context.Context, commentID, reporterID uint, reason string) (models.Report, error)
	ListReported(ctx context.Context, page, perPage int) ([]models.Comment, int64, error)
	Hide(ctx context.Context, commentID uint) (models.Comment, error)
}

// ModerationService records reports and drives the hidden-comment
// overlay. Its listing is the one read path that bypasses the hidden
// filter.
type ModerationService struct {
	reports ReportStore
}

func NewModerationService(reports ReportStore) *ModerationService {
	return &ModerationService{reports: reports}
}

func (s *ModerationService) Report(ctx context.Context, commentID, reporterID uint, reason string) (models.Report, error) {
	return s.reports.Create(ctx, commentID, reporterID, reason)
}

// ListReported returns reported comments annotated with live report
// counts, most-reported first.
func (s *ModerationService) ListReported(ctx context.Context, page, perPage int) (Forest, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	comments, total, err := s.reports.ListReported(ctx, page, perPage)
	if err != nil {
		return Forest{}, err
	}

	forest := Forest{
		Comments: make([]CommentNode, 0, len(comments)),
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages(total, perPage),
		},
	}
	for _, c := range comments {
		forest.Comments = append(forest.Comments, newNode(c))
	}
	return forest, nil
}

func (s *ModerationService) Hide(ctx context.Context, commentID uint) (CommentNode, error) {
	comment, err := s.reports.Hide(ctx, commentID)
	if err != nil {
		return CommentNode{}, err
	}
	return newNode(comment), nil
}
