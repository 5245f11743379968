package middleware

import (
	"strings"

	"arenaapp_backend/internal/auth"
	"arenaapp_backend/internal/config"
	"arenaapp_backend/internal/logger"
	"arenaapp_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "userEmail"
	ContextRoleKey   = "userRole"
)

// extractToken prefers the session cookie and falls back to a bearer header,
// so both the browser client and API tooling can authenticate.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireAuth rejects requests without a valid session token and stores the
// verified identity in the request context.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortWith(c, apperrors.NewUnauthorizedError("Authentication required"))
			return
		}

		claims, err := auth.ParseToken(config.GetConfig().JWT.Secret, token)
		if err != nil {
			if err == auth.ErrTokenExpired {
				abortWith(c, apperrors.NewUnauthorizedError("Session expired"))
				return
			}
			abortWith(c, apperrors.NewUnauthorizedError("Invalid session"))
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRoleKey, claims.Rol)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.Subject))
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRoleKey) != "ADMIN" {
			abortWith(c, apperrors.NewForbiddenError("Admin access required"))
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user id, or "" outside RequireAuth.
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

func abortWith(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPCode, gin.H{"error": appErr})
}
