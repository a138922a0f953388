// Package app wires the client's dependencies: configuration, logging, the
// instrumented HTTP transport, the gateway client, the session, and the
// persisted cart.
package app

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/adresur/adresur-go/internal/api"
	"github.com/adresur/adresur-go/internal/domain/cart"
	"github.com/adresur/adresur-go/internal/domain/order"
	"github.com/adresur/adresur-go/internal/session"
	"github.com/adresur/adresur-go/pkg/httpclient"
)

// App bundles every constructed dependency for the CLI.
type App struct {
	Config   *Config
	Logger   *zap.Logger
	Client   *api.Client
	Session  *session.Session
	Cart     *cart.Cart
	Workflow *order.Workflow

	store *session.FileStore
}

// Setup builds the full dependency graph and resumes any persisted session.
// The returned context carries the logger for zctx consumers.
func Setup(ctx context.Context, cfg *Config) (*App, context.Context, error) {
	lg, err := buildLogger(cfg.Log)
	if err != nil {
		return nil, ctx, errors.Wrap(err, "build logger")
	}
	ctx = zctx.Base(ctx, lg)

	store, err := session.NewFileStore(cfg.StateDir)
	if err != nil {
		return nil, ctx, err
	}

	transport := httpclient.Wrap(
		otelhttp.NewTransport(http.DefaultTransport),
		httpclient.RequestID(),
		httpclient.Instrument("adresur-client"),
		httpclient.LogRequests(),
	)
	client, err := api.NewClient(cfg.BaseURL, api.WithHTTPClient(&http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}))
	if err != nil {
		return nil, ctx, errors.Wrap(err, "create api client")
	}

	sess := session.New(client, store)
	if err := sess.Resume(ctx); err != nil {
		return nil, ctx, err
	}

	a := &App{
		Config:   cfg,
		Logger:   lg,
		Client:   client,
		Session:  sess,
		Cart:     cart.New(),
		Workflow: order.NewWorkflow(client),
		store:    store,
	}
	if err := a.loadCart(); err != nil {
		// A corrupt cart file should not brick the CLI; start fresh.
		lg.Warn("Discarding unreadable cart state", zap.Error(err))
		a.Cart = cart.New()
	}
	return a, ctx, nil
}

func buildLogger(cfg LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func (a *App) cartPath() string {
	return filepath.Join(a.store.Dir(), "cart.json")
}

// loadCart restores the persisted cart, if any.
func (a *App) loadCart() error {
	data, err := os.ReadFile(a.cartPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read cart state")
	}
	return errors.Wrap(json.Unmarshal(data, a.Cart), "decode cart state")
}

// SaveCart persists the cart for the next invocation.
func (a *App) SaveCart() error {
	data, err := json.Marshal(a.Cart)
	if err != nil {
		return errors.Wrap(err, "encode cart state")
	}
	return errors.Wrap(os.WriteFile(a.cartPath(), data, 0o600), "write cart state")
}

// ClearCartState removes the persisted cart file.
func (a *App) ClearCartState() error {
	err := os.Remove(a.cartPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove cart state")
	}
	return nil
}
