// Package catalog holds the browsable marketplace entities: cook profiles and
// the menu items they publish.
package catalog

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/adresur/adresur-go/internal/domain/money"
)

// CookProfile is a registered cook's public kitchen profile.
type CookProfile struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio,omitempty"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	DeliveryRadius int       `json:"delivery_radius"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MenuItem is a dish offered by exactly one cook. Price parsing is handled by
// money.Amount at decode time; the client never recomputes server prices.
type MenuItem struct {
	ID          int64        `json:"id"`
	CookID      int64        `json:"cook_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price"`
	PhotoURL    string       `json:"photo_url,omitempty"`
	IsAvailable bool         `json:"is_available"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Source supplies the two listings a catalog view is built from.
type Source interface {
	ListCooks(ctx context.Context) ([]CookProfile, error)
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
}

// View is a joined, display-ready snapshot of the marketplace.
type View struct {
	Cooks []CookProfile
	Items []MenuItem

	cooksByID map[int64]CookProfile
}

// Load fetches cooks and menu items concurrently and joins them into a View.
func Load(ctx context.Context, src Source) (*View, error) {
	var (
		cooks []CookProfile
		items []MenuItem
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cooks, err = src.ListCooks(ctx)
		return errors.Wrap(err, "list cooks")
	})
	g.Go(func() error {
		var err error
		items, err = src.ListMenuItems(ctx)
		return errors.Wrap(err, "list menu items")
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[int64]CookProfile, len(cooks))
	for _, c := range cooks {
		byID[c.ID] = c
	}

	return &View{
		Cooks:     cooks,
		Items:     items,
		cooksByID: byID,
	}, nil
}

// CookName resolves a cook id to its display name, or "" when unknown.
func (v *View) CookName(cookID int64) string {
	if c, ok := v.cooksByID[cookID]; ok {
		return c.Name
	}
	return ""
}

// ItemsByCook returns the available items grouped under each cook id.
// Unavailable items are excluded since they cannot be ordered.
func (v *View) ItemsByCook() map[int64][]MenuItem {
	grouped := make(map[int64][]MenuItem)
	for _, item := range v.Items {
		if !item.IsAvailable {
			continue
		}
		grouped[item.CookID] = append(grouped[item.CookID], item)
	}
	return grouped
}
