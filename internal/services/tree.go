package services

import (
	"context"

	"scriptorium/internal/models"
	"scriptorium/internal/store"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

type CommentLister interface {
	ListTopLevel(ctx context.Context, postID uint, order store.Order, page, perPage int) ([]models.Comment, int64, error)
	ListReplies(ctx context.Context, parentIDs []uint, order store.Order, includeHidden bool) ([]models.Comment, error)
}

// TreeService materializes the visible comment forest for a post. Two
// reply levels are fetched eagerly, each level in one batched query, so
// a page costs three queries regardless of node count. Deeper replies
// require a follow-up fetch; that depth cap bounds the response size.
type TreeService struct {
	comments CommentLister
}

func NewTreeService(comments CommentLister) *TreeService {
	return &TreeService{comments: comments}
}

func (s *TreeService) BuildForest(ctx context.Context, postID uint, order store.Order, page, perPage int) (Forest, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	top, total, err := s.comments.ListTopLevel(ctx, postID, order, page, perPage)
	if err != nil {
		return Forest{}, err
	}

	forest := Forest{
		Comments: make([]CommentNode, 0, len(top)),
		Pagination: Pagination{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages(total, perPage),
		},
	}
	if len(top) == 0 {
		return forest, nil
	}

	// First reply level keeps the selected ordering; the level below it
	// is always recency.
	level1, err := s.replies(ctx, commentIDs(top), order)
	if err != nil {
		return Forest{}, err
	}
	level2, err := s.replies(ctx, nodeIDs(level1), store.OrderRecency)
	if err != nil {
		return Forest{}, err
	}

	attach(level1, level2)
	for _, c := range top {
		node := newNode(c)
		node.Replies = childrenOf(level1, c.ID)
		forest.Comments = append(forest.Comments, node)
	}
	return forest, nil
}

// replies fetches one visible reply level as nodes, preserving the
// store's ordering within each parent.
func (s *TreeService) replies(ctx context.Context, parentIDs []uint, order store.Order) ([]CommentNode, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	rows, err := s.comments.ListReplies(ctx, parentIDs, order, false)
	if err != nil {
		return nil, err
	}
	nodes := make([]CommentNode, 0, len(rows))
	for _, r := range rows {
		nodes = append(nodes, newNode(r))
	}
	return nodes, nil
}

func attach(parents, children []CommentNode) {
	for i := range parents {
		parents[i].Replies = childrenOf(children, parents[i].ID)
	}
}

func childrenOf(nodes []CommentNode, parentID uint) []CommentNode {
	out := []CommentNode{}
	for _, n := range nodes {
		if n.ParentID != nil && *n.ParentID == parentID {
			out = append(out, n)
		}
	}
	return out
}

func commentIDs(comments []models.Comment) []uint {
	ids := make([]uint, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}
	return ids
}

func nodeIDs(nodes []CommentNode) []uint {
	ids := make([]uint, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
