// Package arango implements db.Store on top of the official ArangoDB driver.
package arango

import (
	"context"
	"fmt"
	"time"

	driver "github.com/arangodb/go-driver"
	driverhttp "github.com/arangodb/go-driver/http"

	"github.com/skitsanos/arangodb-haystack/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for an ArangoDB store.
type Config struct {
	Endpoints  []string
	Database   string
	Username   string
	Password   string
	Collection string
	// CreateCollection creates the collection during Init when it is absent.
	CreateCollection bool
}

// Store implements db.Store against a single ArangoDB collection.
// Transport concerns (TLS, pooling, failover across endpoints) belong to the
// driver; Store holds no mutable state besides the resolved handles.
type Store struct {
	cfg        Config
	client     driver.Client
	database   driver.Database
	collection driver.Collection
}

// NewStore creates a store. No network round trip happens here; the driver
// dials lazily. Call WaitForReady and Init before issuing operations.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, fmt.Errorf("endpoints is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database is required")
	}
	if cfg.Collection == "" {
		return nil, fmt.Errorf("collection is required")
	}

	conn, err := driverhttp.NewConnection(driverhttp.ConnectionConfig{
		Endpoints: cfg.Endpoints,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	clientCfg := driver.ClientConfig{Connection: conn}
	if cfg.Username != "" {
		clientCfg.Authentication = driver.BasicAuthentication(cfg.Username, cfg.Password)
	}
	client, err := driver.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{cfg: cfg, client: client}, nil
}

// Init resolves the configured database and collection, creating the
// collection first when CreateCollection is set.
func (s *Store) Init(ctx context.Context) error {
	database, err := s.client.Database(ctx, s.cfg.Database)
	if err != nil {
		if driver.IsNotFound(err) {
			return fmt.Errorf("database %q: %w: %w", s.cfg.Database, db.ErrDatabaseNotFound, err)
		}
		return fmt.Errorf("open database %q: %w", s.cfg.Database, err)
	}
	s.database = database

	exists, err := database.CollectionExists(ctx, s.cfg.Collection)
	if err != nil {
		return fmt.Errorf("check collection %q: %w", s.cfg.Collection, err)
	}

	if !exists {
		if !s.cfg.CreateCollection {
			return fmt.Errorf("collection %q: %w", s.cfg.Collection, db.ErrCollectionNotFound)
		}
		if _, err := database.CreateCollection(ctx, s.cfg.Collection, nil); err != nil {
			// A concurrent creator is fine; anything else is not.
			if !driver.IsConflict(err) {
				return fmt.Errorf("create collection %q: %w", s.cfg.Collection, err)
			}
		}
	}

	collection, err := database.Collection(ctx, s.cfg.Collection)
	if err != nil {
		return fmt.Errorf("open collection %q: %w", s.cfg.Collection, err)
	}
	s.collection = collection
	return nil
}

// Ping checks connectivity by asking the server for its version.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.client.Version(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// WaitForReady polls Ping until the server responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}
