package database

import (
	"context"

	"github.com/sirupsen/logrus"
)

// InitOptions bundles what Initialize needs to bring the schema up.
type InitOptions struct {
	DatabaseURL   string
	MigrationsURL string // file:// path; empty skips migrations
	RetentionDays int
	Pool          PoolConfig
	Logger        *logrus.Logger
}

// Initialize opens the pool, applies pending migrations and provisions the
// near-term partitions so the first scrape run has somewhere to write.
func Initialize(ctx context.Context, opts InitOptions) (*DB, *PartitionManager, error) {
	if opts.MigrationsURL != "" {
		if err := RunMigrations(opts.MigrationsURL, opts.DatabaseURL); err != nil {
			return nil, nil, err
		}
	}

	db, err := NewDB(ctx, opts.DatabaseURL, opts.Pool)
	if err != nil {
		return nil, nil, err
	}

	partitions := NewPartitionManager(db, opts.RetentionDays, opts.Logger)
	if err := partitions.EnsureUpcoming(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, partitions, nil
}
