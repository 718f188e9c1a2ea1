// Package haystack provides a document store backed by an ArangoDB collection.
//
// A Client wraps one collection and exposes write, read, update, delete and
// metadata-filter operations over it. Construction connects to the server,
// waits for it to respond, and resolves (optionally creating) the collection:
//
//	store, err := haystack.New(ctx,
//		haystack.WithEndpoints("http://localhost:8529"),
//		haystack.WithDatabase("search"),
//		haystack.WithBasicAuth("root", "secret"),
//		haystack.WithCollection("documents"),
//	)
package haystack

import (
	"context"
	"fmt"

	"github.com/skitsanos/arangodb-haystack/internal/db/arango"
	repodoc "github.com/skitsanos/arangodb-haystack/internal/repository/document"
	usecasedoc "github.com/skitsanos/arangodb-haystack/internal/usecase/document"
)

// Client is a document store over a single ArangoDB collection.
// It is safe for concurrent use.
type Client struct {
	cfg     Config
	store   *arango.Store
	service *usecasedoc.Service
}

// New creates a Client, waits for the server to become reachable, and
// resolves the configured database and collection.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database is required (use WithDatabase)")
	}

	store, err := arango.NewStore(arango.Config{
		Endpoints:        cfg.Endpoints,
		Database:         cfg.Database,
		Username:         cfg.Username,
		Password:         cfg.Password,
		Collection:       cfg.Collection,
		CreateCollection: cfg.CreateCollection,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	if err := store.WaitForReady(ctx, cfg.ReadinessTimeout); err != nil {
		return nil, fmt.Errorf("wait for database: %w", err)
	}
	if err := store.Init(ctx); err != nil {
		return nil, mapInitError(err)
	}

	repo := repodoc.New(store, cfg.Collection)

	return &Client{
		cfg:     cfg,
		store:   store,
		service: usecasedoc.New(repo),
	}, nil
}

// Config returns the client configuration with credentials redacted.
func (c *Client) Config() Config {
	return c.cfg.Redacted()
}

// Ping checks connectivity to the server.
func (c *Client) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}
