package model

import "time"

// Item represents a stock item managed by admins
type Item struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// CreateItemRequest is used for creating a new item
type CreateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

type UpdateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}
