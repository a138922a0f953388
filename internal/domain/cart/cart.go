// Package cart implements the client-local shopping cart: line accumulation
// under the single-cook invariant, lazy totals, and the batch checkout step.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-faster/errors"

	"github.com/adresur/adresur-go/internal/domain/catalog"
	"github.com/adresur/adresur-go/internal/domain/money"
	"github.com/adresur/adresur-go/internal/domain/order"
)

// Sentinel errors for cart operations.
var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than 0")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutInFlight = errors.New("an order is already being placed")
)

// ConflictError indicates an attempt to add an item from a different cook
// than the one the cart is already bound to. The cart models a single
// delivery from a single kitchen.
type ConflictError struct {
	CartCookID int64
	ItemCookID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cart holds items from cook %d; complete or clear it before ordering from cook %d",
		e.CartCookID, e.ItemCookID)
}

// Line associates one menu item with a quantity and optional free-text
// instructions. Lines live only inside a cart.
type Line struct {
	Item                catalog.MenuItem `json:"menu_item"`
	Quantity            int              `json:"quantity"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
}

// Subtotal returns price x quantity for this line.
func (l Line) Subtotal() money.Amount {
	return l.Item.Price.MulInt(l.Quantity)
}

// Submitter places a batch order built from cart lines. The gateway client
// implements it.
type Submitter interface {
	CreateBatchOrder(ctx context.Context, items []order.LineItem) ([]order.Order, error)
}

// Cart is an ordered collection of lines, all owned by the same cook. The
// total is never cached; it is recomputed on every read.
type Cart struct {
	mu          sync.Mutex
	lines       []Line
	checkingOut bool
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem appends a menu item to the cart, or merges into an existing line
// for the same item. Quantity must be positive. Adding an item from a
// different cook than the cart's current owner fails with *ConflictError and
// leaves the cart untouched.
//
// On a merge, non-empty instructions replace the existing ones; they are
// never concatenated.
func (c *Cart) AddItem(item catalog.MenuItem, quantity int, instructions string) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) > 0 && c.lines[0].Item.CookID != item.CookID {
		return &ConflictError{
			CartCookID: c.lines[0].Item.CookID,
			ItemCookID: item.CookID,
		}
	}

	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += quantity
			if instructions != "" {
				c.lines[i].SpecialInstructions = instructions
			}
			return nil
		}
	}

	c.lines = append(c.lines, Line{
		Item:                item,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	})
	return nil
}

// UpdateQuantity replaces a line's quantity in place. A quantity of zero or
// less removes the line. Unknown ids are a no-op, not an error.
func (c *Cart) UpdateQuantity(menuItemID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(menuItemID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID == menuItemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the matching line if present. Idempotent.
func (c *Cart) RemoveItem(menuItemID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// ItemCount returns the total quantity across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// CookID returns the id of the cook the cart is bound to. ok is false for an
// empty cart.
func (c *Cart) CookID() (id int64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.lines) == 0 {
		return 0, false
	}
	return c.lines[0].Item.CookID, true
}

// Total returns sum(price x quantity) over all lines.
func (c *Cart) Total() money.Amount {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := money.Zero()
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// PlaceOrder submits the cart as one batch order. On success the cart is
// cleared; on failure it is left untouched so the user can retry. Only one
// checkout may be in flight at a time.
func (c *Cart) PlaceOrder(ctx context.Context, submit Submitter) ([]order.Order, error) {
	c.mu.Lock()
	if len(c.lines) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if c.checkingOut {
		c.mu.Unlock()
		return nil, ErrCheckoutInFlight
	}
	c.checkingOut = true

	items := make([]order.LineItem, len(c.lines))
	for i, l := range c.lines {
		items[i] = order.LineItem{
			MenuItemID:          l.Item.ID,
			Quantity:            l.Quantity,
			SpecialInstructions: l.SpecialInstructions,
		}
	}
	c.mu.Unlock()

	placed, err := submit.CreateBatchOrder(ctx, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkingOut = false
	if err != nil {
		return nil, errors.Wrap(err, "place order")
	}
	c.lines = nil
	return placed, nil
}

// cartState is the serialized form used by the CLI to carry the cart between
// invocations.
type cartState struct {
	Lines []Line `json:"lines"`
}

// MarshalJSON serializes the cart's lines.
func (c *Cart) MarshalJSON() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return json.Marshal(cartState{Lines: c.lines})
}

// UnmarshalJSON restores a cart from its serialized lines.
func (c *Cart) UnmarshalJSON(data []byte) error {
	var state cartState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = state.Lines
	return nil
}
