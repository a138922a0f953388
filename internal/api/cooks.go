package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adresur/adresur-go/internal/domain/catalog"
)

// CookProfileRequest creates or updates a cook profile. Pointer fields are
// omitted when nil so partial updates only touch what the caller set.
type CookProfileRequest struct {
	Name           string  `json:"name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
	DeliveryRadius *int    `json:"delivery_radius,omitempty"`
}

// ListCooks returns every cook profile on the platform.
func (c *Client) ListCooks(ctx context.Context) ([]catalog.CookProfile, error) {
	var out []catalog.CookProfile
	err := c.do(ctx, http.MethodGet, "/cooks/", nil, &out)
	return out, err
}

// GetCook fetches one cook profile by id.
func (c *Client) GetCook(ctx context.Context, id int64) (catalog.CookProfile, error) {
	var out catalog.CookProfile
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cooks/%d", id), nil, &out)
	return out, err
}

// GetMyCookProfile returns the signed-in user's cook profile. A 404 means
// the user is authenticated but has not registered as a cook; this doubles
// as the startup token-validation probe.
func (c *Client) GetMyCookProfile(ctx context.Context) (catalog.CookProfile, error) {
	var out catalog.CookProfile
	err := c.do(ctx, http.MethodGet, "/cooks/me/profile", nil, &out)
	return out, err
}

// CreateCookProfile registers the signed-in user as a cook.
func (c *Client) CreateCookProfile(ctx context.Context, req CookProfileRequest) (catalog.CookProfile, error) {
	var out catalog.CookProfile
	err := c.do(ctx, http.MethodPost, "/cooks/", req, &out)
	return out, err
}

// UpdateCookProfile applies a partial update to a cook profile.
func (c *Client) UpdateCookProfile(ctx context.Context, id int64, req CookProfileRequest) (catalog.CookProfile, error) {
	var out catalog.CookProfile
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cooks/%d", id), req, &out)
	return out, err
}

// DeleteCookProfile removes a cook profile.
func (c *Client) DeleteCookProfile(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cooks/%d", id), nil, nil)
}
