package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"inventory_portal/internal/model"
)

// ItemManagement holds the admin's item list. Every mutation goes to
// the backend first and, on success, is followed by a full refetch: the
// local list is never trusted as a projection of server state. The
// mutex serializes operations on this one list so refetches cannot
// race each other.
type ItemManagement struct {
	mu     sync.Mutex
	client *ItemClient
	items  []model.Item
}

// NewItemManagement creates an empty controller; call Refresh to load.
func NewItemManagement(client *ItemClient) *ItemManagement {
	return &ItemManagement{client: client}
}

// Refresh replaces the local list with the backend's current state.
func (c *ItemManagement) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx)
}

func (c *ItemManagement) refreshLocked(ctx context.Context) error {
	items, err := c.client.List(ctx)
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

// Items returns a copy of the current list.
func (c *ItemManagement) Items() []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// AddItem creates an item. The name must be non-empty and the quantity
// must parse to a positive integer; otherwise nothing is sent and the
// validation failure is surfaced to the caller.
func (c *ItemManagement) AddItem(ctx context.Context, name, quantityStr string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrInvalidInput)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(quantityStr))
	if err != nil || quantity <= 0 {
		return fmt.Errorf("%w: quantity %q must be a positive integer", ErrInvalidInput, quantityStr)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.client.Create(ctx, model.Item{Name: name, Quantity: quantity}); err != nil {
		return err
	}
	return c.refreshLocked(ctx)
}

// EditItem updates an existing item's quantity. Unlike AddItem, zero is
// a legal quantity here.
func (c *ItemManagement) EditItem(ctx context.Context, item model.Item, newQuantity int) error {
	if newQuantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	updated := item
	updated.Quantity = newQuantity

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := c.client.Update(ctx, updated); err != nil {
		return err
	}
	return c.refreshLocked(ctx)
}

// RemoveItem deletes an item by ID.
func (c *ItemManagement) RemoveItem(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.client.Delete(ctx, id); err != nil {
		return err
	}
	return c.refreshLocked(ctx)
}
