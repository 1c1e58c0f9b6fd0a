package client

import (
	"context"
	"fmt"
	"net/http"

	"inventory_portal/internal/model"
)

// ItemClient is the typed request builder for the items resource.
type ItemClient struct {
	api *api
}

// List fetches all items.
func (c *ItemClient) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.api.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create creates an item (ID must be unset) and returns the server's copy.
func (c *ItemClient) Create(ctx context.Context, item model.Item) (*model.Item, error) {
	var created model.Item
	if err := c.api.do(ctx, http.MethodPost, "/items", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an item by ID and returns the server's copy.
func (c *ItemClient) Update(ctx context.Context, item model.Item) (*model.Item, error) {
	var updated model.Item
	path := fmt.Sprintf("/items/%d", item.ID)
	if err := c.api.do(ctx, http.MethodPut, path, item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an item by ID.
func (c *ItemClient) Delete(ctx context.Context, id int64) error {
	return c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/items/%d", id), nil, nil)
}
