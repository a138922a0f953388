package api

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Message is a note attached to an order between buyer and cook.
type Message struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	SenderID  int64     `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMessageRequest posts a message on an order thread.
type CreateMessageRequest struct {
	OrderID int64  `json:"order_id"`
	Content string `json:"content"`
}

// ListOrderMessages returns the message thread for one order.
func (c *Client) ListOrderMessages(ctx context.Context, orderID int64) ([]Message, error) {
	var out []Message
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/messages/order/%d", orderID), nil, &out)
	return out, err
}

// ListMyMessages returns every message visible to the signed-in user.
func (c *Client) ListMyMessages(ctx context.Context) ([]Message, error) {
	var out []Message
	err := c.do(ctx, http.MethodGet, "/messages/", nil, &out)
	return out, err
}

// CreateMessage posts a message on an order thread.
func (c *Client) CreateMessage(ctx context.Context, req CreateMessageRequest) (Message, error) {
	var out Message
	err := c.do(ctx, http.MethodPost, "/messages/", req, &out)
	return out, err
}
