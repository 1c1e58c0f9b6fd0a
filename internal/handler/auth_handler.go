package handler

import (
	"errors"
	"net/http"

	"inventory_portal/internal/service"
	"inventory_portal/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the credential exchange endpoint
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// BasicAuth validates the Basic credentials in the Authorization header
// and answers with the caller's role and a signed token.
func (h *AuthHandler) BasicAuth(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	username, password, err := utils.DecodeBasicToken(authHeader)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
		return
	}

	user, token, err := h.service.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You are authenticated",
		"role":    user.Role,
		"token":   token,
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.GET("/basicauth", h.BasicAuth)
}
