package services

import (
	"context"
	"errors"
	"testing"

	"scriptorium/internal/models"
	"scriptorium/internal/store"
)

type fakeReports struct {
	reported    []models.Comment
	total       int64
	hidden      map[uint]bool
	created     []models.Report
	createErr   error
	lastPage    int
	lastPerPage int
}

func (f *fakeReports) Create(_ context.Context, commentID, reporterID uint, reason string) (models.Report, error) {
	if f.createErr != nil {
		return models.Report{}, f.createErr
	}
	report := models.Report{ID: uint(len(f.created) + 1), CommentID: commentID, ReporterID: reporterID, Reason: reason}
	f.created = append(f.created, report)
	return report, nil
}

func (f *fakeReports) ListReported(_ context.Context, page, perPage int) ([]models.Comment, int64, error) {
	f.lastPage, f.lastPerPage = page, perPage
	return f.reported, f.total, nil
}

func (f *fakeReports) Hide(_ context.Context, commentID uint) (models.Comment, error) {
	if f.hidden == nil {
		f.hidden = map[uint]bool{}
	}
	f.hidden[commentID] = true
	return models.Comment{ID: commentID, Hidden: true}, nil
}

func TestReportAppendsRows(t *testing.T) {
	reports := &fakeReports{}
	svc := NewModerationService(reports)

	// Same reporter twice: both rows stick, no dedup.
	for i := 0; i < 2; i++ {
		if _, err := svc.Report(context.Background(), 5, 9, "spam"); err != nil {
			t.Fatalf("Report failed: %v", err)
		}
	}
	if len(reports.created) != 2 {
		t.Errorf("expected 2 report rows, got %d", len(reports.created))
	}
}

func TestReportMissingComment(t *testing.T) {
	svc := NewModerationService(&fakeReports{createErr: store.ErrNotFound})
	if _, err := svc.Report(context.Background(), 99, 9, "spam"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListReportedAnnotatesCounts(t *testing.T) {
	reports := &fakeReports{
		reported: []models.Comment{
			{ID: 2, Hidden: true, ReportCount: 5},
			{ID: 1, ReportCount: 2},
		},
		total: 2,
	}
	svc := NewModerationService(reports)

	forest, err := svc.ListReported(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListReported failed: %v", err)
	}
	if len(forest.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(forest.Comments))
	}
	// Hidden comments stay visible here, counts ride along.
	if !forest.Comments[0].Hidden || forest.Comments[0].ReportCount != 5 {
		t.Errorf("unexpected first node: %+v", forest.Comments[0])
	}
	if forest.Comments[1].ReportCount != 2 {
		t.Errorf("expected count 2, got %d", forest.Comments[1].ReportCount)
	}
	// Defaults applied for out-of-range paging.
	if reports.lastPage != 1 || reports.lastPerPage != DefaultPerPage {
		t.Errorf("expected default paging, got page %d per_page %d", reports.lastPage, reports.lastPerPage)
	}
}

func TestHide(t *testing.T) {
	reports := &fakeReports{}
	svc := NewModerationService(reports)

	node, err := svc.Hide(context.Background(), 4)
	if err != nil {
		t.Fatalf("Hide failed: %v", err)
	}
	if !node.Hidden {
		t.Error("expected hidden node")
	}
	// Hiding again succeeds with the same state.
	node, err = svc.Hide(context.Background(), 4)
	if err != nil || !node.Hidden {
		t.Errorf("expected idempotent hide, got %+v, %v", node, err)
	}
}
