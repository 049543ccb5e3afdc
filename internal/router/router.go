package router

import (
	"github.com/gin-gonic/gin"

	"scriptorium/internal/handlers"
	"scriptorium/internal/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	secret []byte,
	authHandler *handlers.AuthHandler,
	commentHandler *handlers.CommentHandler,
	voteHandler *handlers.VoteHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	// Public routes: reading never needs a credential.
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/posts/:id/comments", commentHandler.List) // ordered forest + pagination

	// Authenticated routes: every mutation carries an explicit bearer credential.
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired(secret))
	{
		authorized.POST("/posts/:id/comments", commentHandler.Create) // comment or reply
		authorized.PUT("/comments/:id/vote", voteHandler.Cast)        // cast or change vote
		authorized.DELETE("/comments/:id/vote", voteHandler.Remove)   // remove vote
		authorized.POST("/comments/:id/report", moderationHandler.Report)
	}

	// Moderator routes.
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(secret), middleware.AdminRequired())
	{
		admin.GET("/reported-comments", moderationHandler.ListReported)
		admin.PUT("/reported-comments", moderationHandler.Hide)
	}
}
