package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"inventory_portal/internal/model"
)

// RequestClient is the typed request builder for the requests resource.
type RequestClient struct {
	api *api
}

// List fetches every request (admin view).
func (c *RequestClient) List(ctx context.Context) ([]model.Request, error) {
	var requests []model.Request
	if err := c.api.do(ctx, http.MethodGet, "/requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListForUser fetches the requests made by one user.
func (c *RequestClient) ListForUser(ctx context.Context, username string) ([]model.Request, error) {
	var requests []model.Request
	path := "/requests/user/" + url.PathEscape(username)
	if err := c.api.do(ctx, http.MethodGet, path, nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// Create creates a request and returns the server's copy.
func (c *RequestClient) Create(ctx context.Context, req model.Request) (*model.Request, error) {
	var created model.Request
	if err := c.api.do(ctx, http.MethodPost, "/requests", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a request by ID and returns the server's copy.
func (c *RequestClient) Update(ctx context.Context, req model.Request) (*model.Request, error) {
	var updated model.Request
	path := fmt.Sprintf("/requests/%d", req.ID)
	if err := c.api.do(ctx, http.MethodPut, path, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a request by ID.
func (c *RequestClient) Delete(ctx context.Context, id int64) error {
	return c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/requests/%d", id), nil, nil)
}
