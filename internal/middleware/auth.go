package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"scriptorium/internal/auth"
)

const ClaimsKey = "claims"

// AuthRequired rejects requests without a valid bearer token. The
// credential is explicit on every call; there is no ambient session.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// AdminRequired assumes AuthRequired already ran.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok || claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "moderator access required"})
			return
		}
		c.Next()
	}
}

// CurrentClaims returns the verified identity set by AuthRequired.
func CurrentClaims(c *gin.Context) (auth.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}

func bearerClaims(c *gin.Context, secret []byte) (auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return auth.Claims{}, false
	}
	claims, err := auth.ParseToken(secret, token)
	if err != nil {
		return auth.Claims{}, false
	}
	return claims, true
}
