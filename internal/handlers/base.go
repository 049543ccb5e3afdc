package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"scriptorium/internal/store"
	"scriptorium/internal/utils"
)

// writeError maps the store error taxonomy onto HTTP statuses. Anything
// unrecognized is treated as a transient store failure the caller may
// retry with backoff.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrEmptyContent),
		errors.Is(err, store.ErrEmptyReason),
		errors.Is(err, store.ErrInvalidValue),
		errors.Is(err, utils.ErrMalformedID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNoExistingVote),
		errors.Is(err, store.ErrConflict),
		errors.Is(err, store.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("store error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
