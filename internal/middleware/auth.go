package middleware

import (
	"strings"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	contextUserIDKey = "userID"
	contextRoleKey   = "role"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			appErrors.HandleError(c, appErrors.ErrUnauthorized.WithMessage("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			appErrors.HandleError(c, appErrors.ErrUnauthorized.WithMessage("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Set(contextRoleKey, models.UserRole(claims.Role))
		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set. It must
// run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role := GetUserRole(c)
		if !roleSet[role] {
			appErrors.HandleError(c, appErrors.NewForbiddenError("Access denied: insufficient role"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" outside an
// authenticated request.
func GetUserID(c *gin.Context) string {
	v, exists := c.Get(contextUserIDKey)
	if !exists {
		return ""
	}
	id, ok := v.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUserRole returns the authenticated user's role, or "" outside an
// authenticated request.
func GetUserRole(c *gin.Context) models.UserRole {
	v, exists := c.Get(contextRoleKey)
	if !exists {
		return ""
	}
	role, ok := v.(models.UserRole)
	if !ok {
		if s, isString := v.(string); isString {
			return models.UserRole(s)
		}
		return ""
	}
	return role
}
