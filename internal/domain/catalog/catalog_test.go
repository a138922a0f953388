package catalog

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSource struct {
	cooks []CookProfile
	items []MenuItem

	cooksErr error
	itemsErr error
}

func (m *mockSource) ListCooks(_ context.Context) ([]CookProfile, error) {
	return m.cooks, m.cooksErr
}

func (m *mockSource) ListMenuItems(_ context.Context) ([]MenuItem, error) {
	return m.items, m.itemsErr
}

func TestLoad_JoinsCooksAndItems(t *testing.T) {
	src := &mockSource{
		cooks: []CookProfile{
			{ID: 1, Name: "Maria's Kitchen"},
			{ID: 2, Name: "Ben's Bakes"},
		},
		items: []MenuItem{
			{ID: 10, CookID: 1, Title: "Tamales", IsAvailable: true},
			{ID: 11, CookID: 2, Title: "Sourdough", IsAvailable: true},
			{ID: 12, CookID: 2, Title: "Croissant", IsAvailable: false},
		},
	}

	view, err := Load(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, "Maria's Kitchen", view.CookName(1))
	assert.Empty(t, view.CookName(99))

	grouped := view.ItemsByCook()
	assert.Len(t, grouped[1], 1)
	assert.Len(t, grouped[2], 1, "unavailable items are not orderable and stay hidden")
}

func TestLoad_PropagatesErrors(t *testing.T) {
	_, err := Load(context.Background(), &mockSource{cooksErr: errors.New("boom")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list cooks")

	_, err = Load(context.Background(), &mockSource{itemsErr: errors.New("boom")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list menu items")
}
