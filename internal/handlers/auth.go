package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"scriptorium/internal/auth"
	"scriptorium/internal/models"
)

const tokenTTL = 24 * time.Hour

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type AuthHandler struct {
	users  UserStore
	secret []byte
}

func NewAuthHandler(users UserStore, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	parts := strings.Split(req.Email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		badRequest(c, "invalid email address")
		return
	}
	if len(req.Password) < 6 {
		badRequest(c, "password must be at least 6 characters")
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		// Fall back to the mailbox name, same as the signup form default.
		username = parts[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, err)
		return
	}

	user := models.User{
		Username: username,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := auth.IssueToken(h.secret, auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Exp:      time.Now().Add(tokenTTL).Unix(),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
