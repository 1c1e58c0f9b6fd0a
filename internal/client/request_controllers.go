package client

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"inventory_portal/internal/model"
)

// EmployeeRequests holds one employee's own request list.
type EmployeeRequests struct {
	mu       sync.Mutex
	client   *RequestClient
	username string
	requests []model.Request
}

// NewEmployeeRequests creates a controller scoped to one user's view.
func NewEmployeeRequests(client *RequestClient, username string) *EmployeeRequests {
	return &EmployeeRequests{client: client, username: username}
}

// Refresh replaces the local list with the user's requests as the
// backend currently sees them.
func (c *EmployeeRequests) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *EmployeeRequests) refreshLocked(ctx context.Context) error {
	requests, err := c.client.ListForUser(ctx, c.username)
	if err != nil {
		return err
	}
	c.requests = requests
	return nil
}

// Requests returns a copy of the current list.
func (c *EmployeeRequests) Requests() []model.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Request, len(c.requests))
	copy(out, c.requests)
	return out
}

// AddRequest creates a new request for the named item. A new request is
// always PENDING.
func (c *EmployeeRequests) AddRequest(ctx context.Context, itemName string) error {
	if strings.TrimSpace(itemName) == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	req := model.Request{Username: c.username, ItemName: itemName, Status: model.StatusPending}
	if _, err := c.client.Create(ctx, req); err != nil {
		return err
	}
	return c.refreshLocked(ctx)
}

// CancelRequest deletes one of the user's requests. The locally-held
// status must still be PENDING; the check is advisory and the backend
// remains the authority, so a request resolved server-side since the
// last refresh fails the delete and the failure is surfaced, not
// swallowed.
func (c *EmployeeRequests) CancelRequest(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var target *model.Request
	for i := range c.requests {
		if c.requests[i].ID == id {
			target = &c.requests[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: request %d is not in the current view", ErrInvalidInput, id)
	}
	if target.Status != model.StatusPending {
		return fmt.Errorf("%w: request %d is %s", ErrRequestResolved, id, target.Status)
	}

	if err := c.client.Delete(ctx, id); err != nil {
		return err
	}
	return c.refreshLocked(ctx)
}

// RequestManagement holds the admin's view over every request and owns
// the approve/reject side of the lifecycle.
type RequestManagement struct {
	mu       sync.Mutex
	client   *RequestClient
	requests []model.Request
}

// NewRequestManagement creates an empty controller; call Refresh to load.
func NewRequestManagement(client *RequestClient) *RequestManagement {
	return &RequestManagement{client: client}
}

// Refresh replaces the local list with the backend's current state.
func (c *RequestManagement) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *RequestManagement) refreshLocked(ctx context.Context) error {
	requests, err := c.client.List(ctx)
	if err != nil {
		return err
	}
	c.requests = requests
	return nil
}

// Requests returns a copy of the current list.
func (c *RequestManagement) Requests() []model.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Request, len(c.requests))
	copy(out, c.requests)
	return out
}

// Approve moves a PENDING request to APPROVED.
func (c *RequestManagement) Approve(ctx context.Context, req model.Request) error {
	return c.resolve(ctx, req, model.StatusApproved)
}

// Reject moves a PENDING request to REJECTED.
func (c *RequestManagement) Reject(ctx context.Context, req model.Request) error {
	return c.resolve(ctx, req, model.StatusRejected)
}

// resolve rewrites only the status; APPROVED and REJECTED are terminal,
// so anything not PENDING is refused before a request is sent.
func (c *RequestManagement) resolve(ctx context.Context, req model.Request, status string) error {
	if req.Status != model.StatusPending {
		return fmt.Errorf("%w: request %d is %s", ErrRequestResolved, req.ID, req.Status)
	}

	updated := req
	updated.Status = status

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.client.Update(ctx, updated); err != nil {
		return err
	}
	return c.refreshLocked(ctx)
}
