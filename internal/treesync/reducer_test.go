package treesync

import (
	"testing"

	"scriptorium/internal/services"
)

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

// Forest used by most tests:
//
//	1
//	└── 2
//	    └── 4
//	3
func testForest() []services.CommentNode {
	return []services.CommentNode{
		{ID: 1, RatingScore: 3, Replies: []services.CommentNode{
			{ID: 2, ParentID: uintPtr(1), RatingScore: 1, Replies: []services.CommentNode{
				{ID: 4, ParentID: uintPtr(2), Replies: []services.CommentNode{}},
			}},
		}},
		{ID: 3, RatingScore: -1, Replies: []services.CommentNode{}},
	}
}

func TestInsertReplyTopLevel(t *testing.T) {
	forest := testForest()
	out := InsertReply(forest, services.CommentNode{ID: 5, Replies: []services.CommentNode{}})

	if len(out) != 3 {
		t.Fatalf("expected 3 top-level nodes, got %d", len(out))
	}
	if out[0].ID != 5 {
		t.Errorf("expected new top-level comment first, got id %d", out[0].ID)
	}
	if out[1].ID != 1 || out[2].ID != 3 {
		t.Errorf("existing nodes reordered: got %d, %d", out[1].ID, out[2].ID)
	}
}

func TestInsertReplyNested(t *testing.T) {
	forest := testForest()
	out := InsertReply(forest, services.CommentNode{ID: 6, ParentID: uintPtr(2)})

	replies := out[0].Replies[0].Replies
	if len(replies) != 2 {
		t.Fatalf("expected 2 replies under comment 2, got %d", len(replies))
	}
	if replies[0].ID != 4 || replies[1].ID != 6 {
		t.Errorf("expected new reply appended after existing, got %d, %d", replies[0].ID, replies[1].ID)
	}
	if len(forest[0].Replies[0].Replies) != 1 {
		t.Error("input forest was mutated")
	}
}

func TestInsertReplyMissingParentIsNoOp(t *testing.T) {
	forest := testForest()
	out := InsertReply(forest, services.CommentNode{ID: 7, ParentID: uintPtr(99)})

	if len(out) != len(forest) {
		t.Fatalf("expected unchanged forest, got %d nodes", len(out))
	}
	if &out[0] != &forest[0] {
		t.Error("expected the same snapshot back on a missing parent")
	}
}

func TestPatchScore(t *testing.T) {
	forest := testForest()
	out := PatchScore(forest, 4, 2, intPtr(1))

	patched := out[0].Replies[0].Replies[0]
	if patched.RatingScore != 2 {
		t.Errorf("expected score 2, got %d", patched.RatingScore)
	}
	if patched.ViewerVote == nil || *patched.ViewerVote != 1 {
		t.Errorf("expected viewer vote +1, got %v", patched.ViewerVote)
	}
	if forest[0].Replies[0].Replies[0].RatingScore != 0 {
		t.Error("input forest was mutated")
	}
}

func TestPatchScoreClearsViewerVote(t *testing.T) {
	forest := testForest()
	forest[0].ViewerVote = intPtr(1)

	out := PatchScore(forest, 1, 2, nil)
	if out[0].ViewerVote != nil {
		t.Errorf("expected viewer vote cleared, got %v", out[0].ViewerVote)
	}
}

func TestPatchScoreSharesUntouchedBranches(t *testing.T) {
	forest := testForest()

	// Patching node 3 must not rebuild node 1's subtree, and patching
	// node 2 must not rebuild the replies below it.
	out := PatchScore(forest, 3, 5, nil)
	if &out[0].Replies[0] != &forest[0].Replies[0] {
		t.Error("untouched sibling subtree was reconstructed")
	}

	out = PatchScore(forest, 2, 5, nil)
	if &out[0].Replies[0].Replies[0] != &forest[0].Replies[0].Replies[0] {
		t.Error("replies below the patched node were reconstructed")
	}
}

func TestPatchScoreMissingIDIsNoOp(t *testing.T) {
	forest := testForest()
	out := PatchScore(forest, 42, 10, nil)
	if &out[0] != &forest[0] {
		t.Error("expected the same snapshot back on a missing id")
	}
}

func TestPatchHidden(t *testing.T) {
	forest := testForest()
	out := PatchHidden(forest, 2)

	if !out[0].Replies[0].Hidden {
		t.Error("expected node 2 hidden")
	}
	if forest[0].Replies[0].Hidden {
		t.Error("input forest was mutated")
	}
	if out[0].Hidden || out[1].Hidden {
		t.Error("hidden flag leaked onto other nodes")
	}
}
