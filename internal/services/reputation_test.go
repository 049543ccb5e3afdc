package services

import (
	"context"
	"errors"
	"testing"

	"scriptorium/internal/models"
	"scriptorium/internal/store"
)

type fakeLedger struct {
	comment    models.Comment
	applyErrs  []error
	removeErrs []error
	applyCalls int
}

func (f *fakeLedger) Apply(_ context.Context, _, _ uint, value int) (models.Comment, *int, error) {
	f.applyCalls++
	var err error
	if len(f.applyErrs) > 0 {
		err, f.applyErrs = f.applyErrs[0], f.applyErrs[1:]
	}
	if err != nil {
		return models.Comment{}, nil, err
	}
	v := value
	return f.comment, &v, nil
}

func (f *fakeLedger) Remove(_ context.Context, _, _ uint) (models.Comment, error) {
	var err error
	if len(f.removeErrs) > 0 {
		err, f.removeErrs = f.removeErrs[0], f.removeErrs[1:]
	}
	if err != nil {
		return models.Comment{}, err
	}
	return f.comment, nil
}

func TestCastRejectsInvalidValue(t *testing.T) {
	ledger := &fakeLedger{}
	svc := NewReputationService(ledger)

	for _, value := range []int{0, 2, -2, 10} {
		if _, err := svc.Cast(context.Background(), 1, 1, value); !errors.Is(err, store.ErrInvalidValue) {
			t.Errorf("value %d: expected ErrInvalidValue, got %v", value, err)
		}
	}
	if ledger.applyCalls != 0 {
		t.Errorf("ledger touched %d times for invalid values", ledger.applyCalls)
	}
}

func TestCastReturnsViewerVote(t *testing.T) {
	ledger := &fakeLedger{comment: models.Comment{ID: 3, RatingScore: 1}}
	svc := NewReputationService(ledger)

	node, err := svc.Cast(context.Background(), 1, 3, -1)
	if err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if node.RatingScore != 1 {
		t.Errorf("expected score 1, got %d", node.RatingScore)
	}
	if node.ViewerVote == nil || *node.ViewerVote != -1 {
		t.Errorf("expected viewer vote -1, got %v", node.ViewerVote)
	}
}

func TestCastRetriesConflictOnce(t *testing.T) {
	ledger := &fakeLedger{
		comment:   models.Comment{ID: 3},
		applyErrs: []error{store.ErrConflict},
	}
	svc := NewReputationService(ledger)

	if _, err := svc.Cast(context.Background(), 1, 3, 1); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if ledger.applyCalls != 2 {
		t.Errorf("expected 2 apply calls, got %d", ledger.applyCalls)
	}
}

func TestCastSurfacesRepeatedConflict(t *testing.T) {
	ledger := &fakeLedger{
		applyErrs: []error{store.ErrConflict, store.ErrConflict},
	}
	svc := NewReputationService(ledger)

	if _, err := svc.Cast(context.Background(), 1, 3, 1); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict after one retry, got %v", err)
	}
	if ledger.applyCalls != 2 {
		t.Errorf("expected exactly 2 apply calls, got %d", ledger.applyCalls)
	}
}

func TestCastPassesThroughNotFound(t *testing.T) {
	ledger := &fakeLedger{applyErrs: []error{store.ErrNotFound}}
	svc := NewReputationService(ledger)

	if _, err := svc.Cast(context.Background(), 1, 99, 1); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if ledger.applyCalls != 1 {
		t.Errorf("NotFound must not be retried, got %d calls", ledger.applyCalls)
	}
}

func TestRemoveClearsViewerVote(t *testing.T) {
	ledger := &fakeLedger{comment: models.Comment{ID: 3, RatingScore: 0}}
	svc := NewReputationService(ledger)

	node, err := svc.Remove(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if node.ViewerVote != nil {
		t.Errorf("expected cleared viewer vote, got %v", node.ViewerVote)
	}
}

func TestRemovePassesThroughNoExistingVote(t *testing.T) {
	ledger := &fakeLedger{removeErrs: []error{store.ErrNoExistingVote, store.ErrNoExistingVote}}
	svc := NewReputationService(ledger)

	// Removing twice fails identically both times.
	for i := 0; i < 2; i++ {
		if _, err := svc.Remove(context.Background(), 1, 3); !errors.Is(err, store.ErrNoExistingVote) {
			t.Errorf("attempt %d: expected ErrNoExistingVote, got %v", i+1, err)
		}
	}
}
