package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"scriptorium/internal/middleware"
	"scriptorium/internal/services"
	"scriptorium/internal/store"
	"scriptorium/internal/utils"
)

type CommentService interface {
	Create(ctx context.Context, postID, authorID uint, content string, parentID *uint) (services.CommentNode, error)
}

type TreeService interface {
	BuildForest(ctx context.Context, postID uint, order store.Order, page, perPage int) (services.Forest, error)
}

type CommentHandler struct {
	comments CommentService
	trees    TreeService
}

func NewCommentHandler(comments CommentService, trees TreeService) *CommentHandler {
	return &CommentHandler{comments: comments, trees: trees}
}

// List returns the visible comment forest for a post. Public: no
// credential needed to read.
func (h *CommentHandler) List(c *gin.Context) {
	postID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	forest, err := h.trees.BuildForest(
		c.Request.Context(),
		postID,
		store.ParseOrder(c.Query("order")),
		utils.StringToInt(c.Query("page")),
		utils.StringToInt(c.Query("per_page")),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, forest)
}

type createCommentRequest struct {
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	postID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	node, err := h.comments.Create(c.Request.Context(), postID, claims.UserID, req.Content, req.ParentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, node)
}
