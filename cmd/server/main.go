package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"scriptorium/internal/cache"
	"scriptorium/internal/db"
	"scriptorium/internal/handlers"
	"scriptorium/internal/router"
	"scriptorium/internal/services"
	"scriptorium/internal/store"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=scriptorium port=5432 sslmode=disable"
	}
	conn, err := db.Init(dsn)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Println("Database ready")

	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}

	lookupCache, err := cache.New(500)
	if err != nil {
		log.Fatalf("Failed to create cache: %v", err)
	}

	// Stores take the handle explicitly; nothing reaches for a global.
	comments := store.NewComments(conn)
	votes := store.NewVotes(conn)
	reports := store.NewReports(conn)
	posts := store.NewPosts(conn)
	users := store.NewUsers(conn)

	commentService := services.NewCommentService(comments, posts, lookupCache)
	treeService := services.NewTreeService(comments)
	reputationService := services.NewReputationService(votes)
	moderationService := services.NewModerationService(reports)

	r := gin.Default()
	router.RegisterRoutes(
		r,
		[]byte(secret),
		handlers.NewAuthHandler(users, []byte(secret)),
		handlers.NewCommentHandler(commentService, treeService),
		handlers.NewVoteHandler(reputationService),
		handlers.NewModerationHandler(moderationService),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Scriptorium comment service starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
