package middleware

import (
	"net/http"
	"strings"

	"inventory_portal/internal/service"
	"inventory_portal/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUsernameKey = "authUsername"
	AuthRoleKey     = "authRole"
)

// AuthMiddleware authenticates every request from its Authorization
// header. Two credential forms are accepted: the Basic token the
// browser/CLI session stores verbatim, and the signed Bearer token the
// authenticate endpoint hands out.
func AuthMiddleware(authService service.AuthService, jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		switch {
		case strings.HasPrefix(authHeader, "Basic "):
			username, password, err := utils.DecodeBasicToken(authHeader)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
				return
			}
			user, _, err := authService.Authenticate(c.Request.Context(), username, password)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.Set(AuthUsernameKey, user.Username)
			c.Set(AuthRoleKey, user.Role)

		case strings.HasPrefix(authHeader, "Bearer "):
			claims, err := jwtUtil.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			c.Set(AuthUsernameKey, claims.Username)
			c.Set(AuthRoleKey, claims.Role)

		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		c.Next()
	}
}
