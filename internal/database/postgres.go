// Package database owns the connection pool, schema migrations and the
// partition maintenance for the time-series tables.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig tunes the shared connection pool. One pool serves every task in
// the process; a task holds a connection only for the span of its
// transaction.
type PoolConfig struct {
	MaxConns       int32
	MinConns       int32
	AcquireTimeout time.Duration
}

// DefaultPoolConfig returns the pool sizing defaults.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConns:       10,
		MinConns:       1,
		AcquireTimeout: 30 * time.Second,
	}
}

// DB wraps the pgxpool.Pool used by every repository.
type DB struct {
	pool *pgxpool.Pool
}

// NewDB creates the connection pool from a DATABASE_URL style DSN and
// verifies connectivity before returning.
func NewDB(ctx context.Context, databaseURL string, cfg PoolConfig) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.ConnConfig.ConnectTimeout = cfg.AcquireTimeout
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute
	poolConfig.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Ping verifies database connectivity.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close gracefully closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// WithTransaction runs fn inside a transaction, rolling back on error.
func (db *DB) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			return fmt.Errorf("transaction failed: %w, rollback failed: %v", err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// HealthCheck performs a simple query against the database.
func (db *DB) HealthCheck(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, "SELECT 1"); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// GetPool returns the underlying connection pool for repository queries.
func (db *DB) GetPool() *pgxpool.Pool {
	return db.pool
}
