// Package mongo holds the MongoDB bootstrap and the repositories backing the
// user and book stores.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultDatabase = "library_catalog"
	appName         = "catalog-api"
)

// Config captures the settings required to establish the catalog's MongoDB
// connection. Zero values fall back to the defaults above.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// withDefaults returns a copy of cfg with unset fields filled in.
func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Database == "" {
		c.Database = defaultDatabase
	}
	return c
}

// Connect establishes the client, verifies connectivity with a ping, and
// returns both the client and the catalog database handle. The connection is
// the only process-wide store resource; it is created once at startup and
// read-only thereafter.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	cfg = cfg.withDefaults()

	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
