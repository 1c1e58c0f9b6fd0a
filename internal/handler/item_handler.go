package handler

import (
	"errors"
	"net/http"
	"strconv"

	"inventory_portal/internal/model"
	"inventory_portal/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemHandler handles stock item requests
type ItemHandler struct {
	service service.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(s service.ItemService) *ItemHandler {
	return &ItemHandler{service: s}
}

func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.service.GetAllItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req model.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req model.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidItem):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterItemRoutes registers item routes. Reading the list needs any
// authenticated caller; every mutation is admin only.
func (h *ItemHandler) RegisterItemRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	items := rg.Group("/items", authMW)
	{
		items.GET("", h.ListItems)
		items.POST("", adminMW, h.CreateItem)
		items.PUT("/:id", adminMW, h.UpdateItem)
		items.DELETE("/:id", adminMW, h.DeleteItem)
	}
}
