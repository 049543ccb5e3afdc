package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"scriptorium/internal/middleware"
	"scriptorium/internal/models"
	"scriptorium/internal/services"
	"scriptorium/internal/utils"
)

type ModerationService interface {
	Report(ctx context.Context, commentID, reporterID uint, reason string) (models.Report, error)
	ListReported(ctx context.Context, page, perPage int) (services.Forest, error)
	Hide(ctx context.Context, commentID uint) (services.CommentNode, error)
}

type ModerationHandler struct {
	moderation ModerationService
}

func NewModerationHandler(moderation ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

type reportRequest struct {
	Reason string `json:"reason"`
}

// Report files a report against a comment. Any authenticated user.
func (h *ModerationHandler) Report(c *gin.Context) {
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

	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	report, err := h.moderation.Report(c.Request.Context(), commentID, claims.UserID, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "comment reported",
		"report":  report,
	})
}

// ListReported pages reported comments with live counts for moderators;
// hidden comments stay visible here.
func (h *ModerationHandler) ListReported(c *gin.Context) {
	forest, err := h.moderation.ListReported(
		c.Request.Context(),
		utils.StringToInt(c.Query("page")),
		utils.StringToInt(c.Query("per_page")),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, forest)
}

type hideRequest struct {
	CommentID uint `json:"comment_id"`
}

// Hide flags a comment as hidden. Idempotent; no unhide.
func (h *ModerationHandler) Hide(c *gin.Context) {
	var req hideRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CommentID == 0 {
		badRequest(c, "invalid request body")
		return
	}

	node, err := h.moderation.Hide(c.Request.Context(), req.CommentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, node)
}
