package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doctors-portal/api/internal/models"
	"github.com/doctors-portal/api/internal/token"
)

// ContextEmailKey is where Authenticate stores the verified caller identity.
const ContextEmailKey = "email"

// UserFinder is the slice of the store the role gate needs.
type UserFinder interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authenticate requires a bearer token on the Authorization header. A missing
// header is rejected with 401; a token that fails verification (bad signature
// or expired) with 403. On success the embedded email is set on the context.
func Authenticate(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		email, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}

// RequireAdmin lets a request through only when the authenticated user's
// stored role is "admin". A missing user record or a failed lookup counts as
// non-admin.
func RequireAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmailKey)
		user, err := users.UserByEmail(c.Request.Context(), email)
		if err != nil || user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RequireOwner restricts a route to the resource owner: the named query
// parameter must equal the authenticated email.
func RequireOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query(param) != c.GetString(ContextEmailKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}
		c.Next()
	}
}
