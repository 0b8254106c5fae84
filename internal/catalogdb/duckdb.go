// Package catalogdb indexes the static catalog in an in-memory DuckDB database
// so it can be queried by filter. Nothing is written to disk.
package catalogdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb" // Register DuckDB driver
)

// =============================================================================
// DUCKDB CLIENT
// =============================================================================

// DatabaseConfig holds configuration options for the database.
type DatabaseConfig struct {
	Threads int           // Number of threads for DuckDB (0 = default)
	Timeout time.Duration // Ping timeout (0 = no timeout)
}

// DuckDBClient manages the in-memory DuckDB connection.
type DuckDBClient struct {
	db     *sql.DB
	config DatabaseConfig
}

// DuckDBOption configures the DuckDB client.
type DuckDBOption func(*DuckDBClient)

// WithThreads sets the number of DuckDB threads.
func WithThreads(n int) DuckDBOption {
	return func(c *DuckDBClient) {
		c.config.Threads = n
	}
}

// WithTimeout sets the connect timeout.
func WithTimeout(d time.Duration) DuckDBOption {
	return func(c *DuckDBClient) {
		c.config.Timeout = d
	}
}

// NewInMemoryDB opens a fresh in-memory DuckDB database.
func NewInMemoryDB(opts ...DuckDBOption) (*DuckDBClient, error) {
	client := &DuckDBClient{}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	ctx := context.Background()
	if client.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, client.config.Timeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// Every connection to "" is a separate database; keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	client.db = db

	if client.config.Threads > 0 {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA threads=%d", client.config.Threads)); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting threads: %w", err)
		}
	}

	return client, nil
}

// DB returns the underlying sql.DB instance.
func (c *DuckDBClient) DB() *sql.DB {
	return c.db
}

// Close releases database resources.
func (c *DuckDBClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
