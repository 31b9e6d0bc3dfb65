package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"shiftcore/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxPersonIDKey = "person_id"
	ctxRoleKey     = "person_role"

	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxPersonIDKey, claims.PersonID)
		c.Set(ctxRoleKey, claims.Role)
		c.Set("jwt_claims", map[string]any{
			"person_id": claims.PersonID.String(),
			"role":      claims.Role,
		})
		c.Next()
	}
}

// RequireAdmin gates forced signups, bulk removal and cache invalidation.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetPersonID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxPersonIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
