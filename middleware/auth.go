package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SuyashJain1994/Contract-Analyzer/model"
	"github.com/SuyashJain1994/Contract-Analyzer/pkg/logger"
	"github.com/SuyashJain1994/Contract-Analyzer/service"
)

// AuthMiddleware validates the bearer token and attaches the identity to
// the request
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := auth.CurrentUser(parts[1])
		if err != nil {
			logger.Warn(c.Request.Context(), "token verification failed", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Store identity in context
		c.Set("user", user)

		ctx := context.WithValue(c.Request.Context(), logger.UserEmailKey, user.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUser gets the authenticated identity from context
func GetUser(c *gin.Context) *model.User {
	if user, exists := c.Get("user"); exists {
		return user.(*model.User)
	}
	return nil
}
