package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// partitionedTables are the time-series tables range-partitioned by
// capture_time at daily granularity.
var partitionedTables = []string{"snapshots", "market_odds"}

// PartitionManager pre-provisions daily partitions ahead of time and drops
// whole partitions past the retention horizon. Dropping a partition is a
// metadata operation; per-row deletes never happen on these tables.
type PartitionManager struct {
	db            *DB
	logger        *logrus.Entry
	retentionDays int
	provisionDays int
}

// NewPartitionManager creates a manager with the given retention horizon.
func NewPartitionManager(db *DB, retentionDays int, logger *logrus.Logger) *PartitionManager {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &PartitionManager{
		db:            db,
		logger:        logger.WithField("component", "partitions"),
		retentionDays: retentionDays,
		provisionDays: 7,
	}
}

// Maintain runs one full maintenance cycle: provision upcoming partitions,
// then drop expired ones. Safe to run on every scheduler tick.
func (m *PartitionManager) Maintain(ctx context.Context) error {
	if err := m.EnsureUpcoming(ctx); err != nil {
		return err
	}
	return m.DropExpired(ctx)
}

// EnsureUpcoming creates daily partitions from today through provisionDays
// ahead, for every partitioned table. Creation is idempotent.
func (m *PartitionManager) EnsureUpcoming(ctx context.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for day := 0; day <= m.provisionDays; day++ {
		start := today.AddDate(0, 0, day)
		for _, table := range partitionedTables {
			if err := m.createPartition(ctx, table, start); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *PartitionManager) createPartition(ctx context.Context, table string, day time.Time) error {
	name := partitionName(table, day)
	end := day.AddDate(0, 0, 1)

	stmt := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s PARTITION OF %s FOR VALUES FROM ('%s') TO ('%s')`,
		name, table, day.Format("2006-01-02"), end.Format("2006-01-02"),
	)
	if _, err := m.db.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("create partition %s: %w", name, err)
	}
	return nil
}

// DropExpired detaches and drops partitions whose day is entirely before the
// retention horizon.
func (m *PartitionManager) DropExpired(ctx context.Context) error {
	horizon := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -m.retentionDays)

	for _, table := range partitionedTables {
		names, err := m.listPartitions(ctx, table)
		if err != nil {
			return err
		}
		for _, name := range names {
			day, ok := partitionDay(table, name)
			if !ok || !day.Before(horizon) {
				continue
			}
			if _, err := m.db.pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, name)); err != nil {
				return fmt.Errorf("drop partition %s: %w", name, err)
			}
			m.logger.WithFields(logrus.Fields{"table": table, "partition": name}).
				Info("dropped expired partition")
		}
	}
	return nil
}

func (m *PartitionManager) listPartitions(ctx context.Context, table string) ([]string, error) {
	rows, err := m.db.pool.Query(ctx, `
		SELECT c.relname
		FROM pg_inherits i
		JOIN pg_class c ON c.oid = i.inhrelid
		JOIN pg_class p ON p.oid = i.inhparent
		WHERE p.relname = $1`, table)
	if err != nil {
		return nil, fmt.Errorf("list partitions of %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan partition name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// partitionName composes the daily partition name, e.g. snapshots_p20260826.
func partitionName(table string, day time.Time) string {
	return fmt.Sprintf("%s_p%s", table, day.Format("20060102"))
}

// partitionDay recovers the day from a partition name; non-matching names
// (such as the default partition) are skipped.
func partitionDay(table, name string) (time.Time, bool) {
	prefix := table + "_p"
	if len(name) != len(prefix)+8 || name[:len(prefix)] != prefix {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation("20060102", name[len(prefix):], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}
