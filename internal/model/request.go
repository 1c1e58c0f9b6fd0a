package model

import "time"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Request represents an employee's request for an item. A request is
// created PENDING; APPROVED and REJECTED are terminal, nothing moves a
// request back to PENDING.
type Request struct {
	ID        int64     `json:"id,omitempty"`
	Username  string    `json:"username"`
	ItemName  string    `json:"itemName"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// CreateRequestRequest is used for creating a new item request
type CreateRequestRequest struct {
	ItemName string `json:"itemName" binding:"required"`
}

type UpdateRequestRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}
