package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"contact_news/internal/domain"
)

const (
	userIDContextKey    = "auth_user_id"
	authTokenContextKey = "auth_token"
)

// TokenResolver maps a bearer token to its user.
type TokenResolver interface {
	ResolveUser(ctx context.Context, token string) (uuid.UUID, error)
}

// Middleware validates bearer tokens and stores the authenticated user in the context.
func Middleware(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Missing authorization header"})
			return
		}
		userID, err := resolver.ResolveUser(c.Request.Context(), token)
		if err != nil {
			status := http.StatusBadGateway
			var cerr *domain.ConfigurationError
			switch {
			case errors.Is(err, domain.ErrUnauthorized):
				status = http.StatusUnauthorized
			case errors.As(err, &cerr):
				status = http.StatusInternalServerError
			}
			c.AbortWithStatusJSON(status, gin.H{"success": false, "error": "Auth failed: " + err.Error()})
			return
		}
		c.Set(userIDContextKey, userID)
		c.Set(authTokenContextKey, token)
		c.Next()
	}
}

// ServiceRoleMiddleware admits only callers presenting the service-role key.
func ServiceRoleMiddleware(serviceRoleKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if serviceRoleKey == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "auth.service_role_key not configured"})
			return
		}
		token := BearerToken(c)
		if subtle.ConstantTimeCompare([]byte(token), []byte(serviceRoleKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// UserIDFromContext retrieves the authenticated user id from the gin context.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	val, ok := c.Get(userIDContextKey)
	if !ok {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	return userID, ok
}

func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
