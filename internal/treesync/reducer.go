// Package treesync folds confirmed server responses into a locally
// cached comment forest without a refetch. Every transform is a pure
// function over an immutable snapshot: only the path down to the matched
// node is copied, untouched siblings and subtrees are shared with the
// input. Nothing here speculates — callers apply a transform only after
// the server confirmed the mutation.
package treesync

import (
	"scriptorium/internal/services"
)

// InsertReply adds a freshly created comment to the forest. Top-level
// comments are prepended; replies are appended to their parent's reply
// list wherever the parent sits. If the parent is not materialized
// locally (e.g. it lives below the eager depth cap), the forest is
// returned unchanged and the caller needs a refetch to see the reply.
func InsertReply(forest []services.CommentNode, reply services.CommentNode) []services.CommentNode {
	if reply.ParentID == nil {
		out := make([]services.CommentNode, 0, len(forest)+1)
		out = append(out, reply)
		return append(out, forest...)
	}

	updated, ok := patch(forest, *reply.ParentID, func(parent *services.CommentNode) {
		replies := make([]services.CommentNode, 0, len(parent.Replies)+1)
		replies = append(replies, parent.Replies...)
		parent.Replies = append(replies, reply)
	})
	if !ok {
		return forest
	}
	return updated
}

// PatchScore replaces one node's rating score and the viewer's own vote
// marker after a confirmed vote response.
func PatchScore(forest []services.CommentNode, id uint, score int, viewerVote *int) []services.CommentNode {
	updated, ok := patch(forest, id, func(node *services.CommentNode) {
		node.RatingScore = score
		node.ViewerVote = viewerVote
	})
	if !ok {
		return forest
	}
	return updated
}

// PatchHidden marks one node hidden after a confirmed moderator action;
// assembler-fed views omit it on the next render.
func PatchHidden(forest []services.CommentNode, id uint) []services.CommentNode {
	updated, ok := patch(forest, id, func(node *services.CommentNode) {
		node.Hidden = true
	})
	if !ok {
		return forest
	}
	return updated
}

// patch walks the forest looking for id. On a match it clones the
// current level, applies fn to the clone of the matched node, and clones
// each level back up the path. Levels without a match are returned
// as-is, so sibling branches keep their identity.
func patch(nodes []services.CommentNode, id uint, fn func(*services.CommentNode)) ([]services.CommentNode, bool) {
	for i := range nodes {
		if nodes[i].ID == id {
			out := cloneLevel(nodes)
			fn(&out[i])
			return out, true
		}
		if len(nodes[i].Replies) == 0 {
			continue
		}
		if replies, ok := patch(nodes[i].Replies, id, fn); ok {
			out := cloneLevel(nodes)
			out[i].Replies = replies
			return out, true
		}
	}
	return nodes, false
}

func cloneLevel(nodes []services.CommentNode) []services.CommentNode {
	out := make([]services.CommentNode, len(nodes))
	copy(out, nodes)
	return out
}
