// Package order models the order lifecycle on the client side: the status
// state machine, transition requests against the backend, and the pure
// filtering and aggregation used by the order views.
package order

import (
	"context"
	"time"

	"github.com/adresur/adresur-go/internal/domain/money"
)

// MenuItemSnapshot is the denormalized menu item embedded in an order
// response for display. It reflects the item at fetch time, not order time.
type MenuItemSnapshot struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Price       money.Amount `json:"price"`
	PhotoURL    string       `json:"photo_url,omitempty"`
}

// Order is a server-owned order record. The client renders it and requests
// transitions; identity, pricing, and timestamps are authoritative on the
// backend and never computed locally.
type Order struct {
	ID                  int64        `json:"id"`
	BuyerID             int64        `json:"buyer_id"`
	CookID              int64        `json:"cook_id"`
	MenuItemID          int64        `json:"menu_item_id"`
	Quantity            int          `json:"quantity"`
	Status              Status       `json:"status"`
	TotalPrice          money.Amount `json:"total_price"`
	SpecialInstructions string       `json:"special_instructions,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`

	// Denormalized display fields supplied by the backend.
	MenuItem  *MenuItemSnapshot `json:"menuItem,omitempty"`
	CookName  string            `json:"cook_name,omitempty"`
	BuyerName string            `json:"buyer_name,omitempty"`
	BuyerMail string            `json:"buyer_email,omitempty"`
}

// LineItem is one line of an order request: a menu item, a positive quantity,
// and optional free-text instructions for the cook.
type LineItem struct {
	MenuItemID          int64  `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// Update is the payload for mutating an existing order.
type Update struct {
	Status              Status `json:"status,omitempty"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// API is the slice of the gateway client the workflow needs.
type API interface {
	ListOrders(ctx context.Context) ([]Order, error)
	UpdateOrder(ctx context.Context, id int64, update Update) (Order, error)
}
