package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sq23rd/roster-backend/internal/auth"
	"github.com/sq23rd/roster-backend/internal/logger"
	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/pkg/apperrors"
)

// AuthMiddleware verifies the bearer token and stores the caller's identity
// in the request context. Every failure mode answers 401 with the same body.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.ErrInvalidBearerToken)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			abortWith(c, apperrors.ErrInvalidBearerToken)
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles allows the request through only when the caller holds one of
// the given roles. Role sets are flat, owner is not implied anywhere.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok || !roleSet[role] {
			abortWith(c, apperrors.NewForbiddenError("Access denied: insufficient permissions."))
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}

// GetUserID returns the authenticated caller's user ID, or "" when the
// request did not pass AuthMiddleware.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}
	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

func GetRole(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get("role")
	if !exists {
		return "", false
	}

	if role, ok := roleVal.(models.UserRole); ok {
		return role, true
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr), true
	}
	return "", false
}
