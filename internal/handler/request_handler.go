package handler

import (
	"errors"
	"net/http"
	"strconv"

	"inventory_portal/internal/middleware"
	"inventory_portal/internal/model"
	"inventory_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// RequestHandler handles item-request endpoints
type RequestHandler struct {
	service service.RequestService
}

// NewRequestHandler creates a new RequestHandler
func NewRequestHandler(s service.RequestService) *RequestHandler {
	return &RequestHandler{service: s}
}

func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.service.GetAllRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) ListUserRequests(c *gin.Context) {
	username := c.Param("username")
	actor := c.GetString(middleware.AuthUsernameKey)
	role := c.GetString(middleware.AuthRoleKey)
	if role != model.RoleAdmin && actor != username {
		c.JSON(http.StatusForbidden, gin.H{"error": "You may only view your own requests"})
		return
	}

	requests, err := h.service.GetUserRequests(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list user requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req model.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Username comes from the credential, not the payload.
	actor := c.GetString(middleware.AuthUsernameKey)
	created, err := h.service.CreateRequest(c.Request.Context(), actor, req.ItemName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var req model.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.service.ResolveRequest(c.Request.Context(), requestID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRequestResolved):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	actor := c.GetString(middleware.AuthUsernameKey)
	role := c.GetString(middleware.AuthRoleKey)
	if err := h.service.DeleteRequest(c.Request.Context(), requestID, actor, role); err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRequestResolved):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRequestRoutes registers request routes. Listing everything
// and resolving are admin only; creating and deleting go through the
// service's ownership and lifecycle checks.
func (h *RequestHandler) RegisterRequestRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	requests := rg.Group("/requests", authMW)
	{
		requests.GET("", adminMW, h.ListRequests)
		requests.GET("/user/:username", h.ListUserRequests)
		requests.POST("", h.CreateRequest)
		requests.PUT("/:id", adminMW, h.UpdateRequest)
		requests.DELETE("/:id", h.DeleteRequest)
	}
}
