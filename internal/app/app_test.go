package app

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adresur/adresur-go/internal/domain/catalog"
	"github.com/adresur/adresur-go/internal/domain/money"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		BaseURL:  "http://localhost:8000",
		StateDir: t.TempDir(),
		Timeout:  30 * time.Second,
		Log:      LogConfig{Level: "warn", Format: "console"},
	}
}

func TestSetup_FreshState(t *testing.T) {
	a, _, err := Setup(context.Background(), testConfig(t))
	require.NoError(t, err)
	assert.False(t, a.Session.SignedIn())
	assert.Equal(t, 0, a.Cart.Len())
}

func TestCartPersistsAcrossSetups(t *testing.T) {
	cfg := testConfig(t)

	a, _, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, a.Cart.AddItem(catalog.MenuItem{
		ID:     7,
		CookID: 3,
		Title:  "Pierogi",
		Price:  money.FromFloat(8.5),
	}, 2, "extra sour cream"))
	require.NoError(t, a.SaveCart())

	b, _, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	lines := b.Cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(7), lines[0].Item.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "extra sour cream", lines[0].SpecialInstructions)
	assert.Equal(t, "17.00", b.Cart.Total().String())

	require.NoError(t, b.ClearCartState())
	d, _, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Cart.Len())
}

func TestSetup_CorruptCartStartsFresh(t *testing.T) {
	cfg := testConfig(t)

	a, _, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(a.cartPath(), []byte("not json"), 0o600))

	b, _, err := Setup(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Cart.Len())
}

func TestBuildLogger_RejectsBadLevel(t *testing.T) {
	_, err := buildLogger(LogConfig{Level: "shout", Format: "console"})
	require.Error(t, err)
}
