package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/adresur/adresur-go/internal/domain/order"
)

// ListOrders returns the signed-in user's orders. The backend scopes the
// list by role: buyers see what they ordered, cooks see what their kitchen
// received.
func (c *Client) ListOrders(ctx context.Context) ([]order.Order, error) {
	var out []order.Order
	err := c.do(ctx, http.MethodGet, "/orders/", nil, &out)
	return out, err
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int64) (order.Order, error) {
	var out order.Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &out)
	return out, err
}

// CreateOrder places a single-item order.
func (c *Client) CreateOrder(ctx context.Context, item order.LineItem) (order.Order, error) {
	var out order.Order
	err := c.do(ctx, http.MethodPost, "/orders/", item, &out)
	return out, err
}

// CreateBatchOrder places one order per line, in order. The backend has no
// batch endpoint, so the batch is a client-side composite: it stops at the
// first failure and reports how far it got. Callers treat the batch as a
// single unit; partially placed orders remain on the backend and show up in
// the order list.
func (c *Client) CreateBatchOrder(ctx context.Context, items []order.LineItem) ([]order.Order, error) {
	if len(items) == 0 {
		return nil, errors.New("no items to order")
	}

	placed := make([]order.Order, 0, len(items))
	for i, item := range items {
		o, err := c.CreateOrder(ctx, item)
		if err != nil {
			return nil, errors.Wrapf(err, "item %d of %d (%d placed)", i+1, len(items), len(placed))
		}
		placed = append(placed, o)
	}
	return placed, nil
}

// UpdateOrder mutates an order's status or instructions.
func (c *Client) UpdateOrder(ctx context.Context, id int64, update order.Update) (order.Order, error) {
	var out order.Order
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), update, &out)
	return out, err
}

// DeleteOrder removes an order record.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}
