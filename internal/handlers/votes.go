package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"scriptorium/internal/middleware"
	"scriptorium/internal/services"
	"scriptorium/internal/utils"
)

type ReputationService interface {
	Cast(ctx context.Context, userID, commentID uint, value int) (services.CommentNode, error)
	Remove(ctx context.Context, userID, commentID uint) (services.CommentNode, error)
}

type VoteHandler struct {
	reputation ReputationService
}

func NewVoteHandler(reputation ReputationService) *VoteHandler {
	return &VoteHandler{reputation: reputation}
}

type castVoteRequest struct {
	Value int `json:"value"`
}

// Cast upserts the caller's vote and returns the updated node including
// the caller's own vote state.
func (h *VoteHandler) Cast(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	commentID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	node, err := h.reputation.Cast(c.Request.Context(), claims.UserID, commentID, req.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, node)
}

// Remove deletes the caller's vote; fails 409 when there is none.
func (h *VoteHandler) Remove(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	commentID, err := utils.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	node, err := h.reputation.Remove(c.Request.Context(), claims.UserID, commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, node)
}
