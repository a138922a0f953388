package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adresur/adresur-go/internal/domain/catalog"
)

// MenuItemRequest creates or updates a menu item. Pointer fields are omitted
// when nil so partial updates only touch what the caller set. The backend
// validates price and owns the canonical value.
type MenuItemRequest struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}

// ListMenuItems returns every available menu item across all cooks.
func (c *Client) ListMenuItems(ctx context.Context) ([]catalog.MenuItem, error) {
	var out []catalog.MenuItem
	err := c.do(ctx, http.MethodGet, "/menu/", nil, &out)
	return out, err
}

// GetMenuItem fetches one menu item by id.
func (c *Client) GetMenuItem(ctx context.Context, id int64) (catalog.MenuItem, error) {
	var out catalog.MenuItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/menu/%d", id), nil, &out)
	return out, err
}

// ListCookMenuItems returns one cook's menu items.
func (c *Client) ListCookMenuItems(ctx context.Context, cookID int64) ([]catalog.MenuItem, error) {
	var out []catalog.MenuItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/menu/cook/%d", cookID), nil, &out)
	return out, err
}

// CreateMenuItem publishes a new menu item under the signed-in cook.
func (c *Client) CreateMenuItem(ctx context.Context, req MenuItemRequest) (catalog.MenuItem, error) {
	var out catalog.MenuItem
	err := c.do(ctx, http.MethodPost, "/menu/", req, &out)
	return out, err
}

// UpdateMenuItem applies a partial update to a menu item.
func (c *Client) UpdateMenuItem(ctx context.Context, id int64, req MenuItemRequest) (catalog.MenuItem, error) {
	var out catalog.MenuItem
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/menu/%d", id), req, &out)
	return out, err
}

// DeleteMenuItem removes a menu item.
func (c *Client) DeleteMenuItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/menu/%d", id), nil, nil)
}
