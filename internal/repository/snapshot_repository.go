package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/models"
)

// PostgresSnapshotRepository implements SnapshotRepository for PostgreSQL.
type PostgresSnapshotRepository struct {
	db *database.DB
}

// NewPostgresSnapshotRepository creates a new snapshot repository.
func NewPostgresSnapshotRepository(db *database.DB) SnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

// Append persists a snapshot and its market rows in one transaction. Margins
// arrive precomputed from normalization; the store writes them as-is.
func (r *PostgresSnapshotRepository) Append(ctx context.Context, eventID, bookmakerID uuid.UUID, captureTime time.Time, markets []models.MarketOdds) (uuid.UUID, error) {
	var snapshotID uuid.UUID

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO snapshots (event_id, bookmaker_id, capture_time)
			VALUES ($1, $2, $3)
			RETURNING id
		`, eventID, bookmakerID, captureTime).Scan(&snapshotID)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}

		if len(markets) == 0 {
			return nil
		}

		rows := make([][]any, 0, len(markets))
		for i := range markets {
			m := &markets[i]
			outcomes, err := json.Marshal(m.Outcomes)
			if err != nil {
				return fmt.Errorf("failed to encode outcomes: %w", err)
			}
			rows = append(rows, []any{
				snapshotID, captureTime, m.ReferenceMarketID, m.ReferenceMarketName,
				m.Line, outcomes, m.Margin,
			})
		}

		count, err := tx.CopyFrom(ctx, pgx.Identifier{"market_odds"},
			[]string{"snapshot_id", "capture_time", "reference_market_id", "reference_market_name", "line", "outcomes", "margin"},
			pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("failed to batch insert market odds: %w", err)
		}
		if count != int64(len(rows)) {
			return fmt.Errorf("inserted %d market rows, expected %d", count, len(rows))
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return snapshotID, nil
}

// Latest returns the most recent snapshot for an (event, bookmaker) pair,
// markets included.
func (r *PostgresSnapshotRepository) Latest(ctx context.Context, eventID, bookmakerID uuid.UUID) (*models.Snapshot, error) {
	query := `
		SELECT id, event_id, bookmaker_id, capture_time
		FROM snapshots
		WHERE event_id = $1 AND bookmaker_id = $2
		ORDER BY capture_time DESC
		LIMIT 1
	`

	s := &models.Snapshot{}
	err := r.db.GetPool().QueryRow(ctx, query, eventID, bookmakerID).Scan(
		&s.ID, &s.EventID, &s.BookmakerID, &s.CaptureTime,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}

	if s.Markets, err = r.loadMarkets(ctx, s.ID); err != nil {
		return nil, err
	}
	return s, nil
}

// Between returns snapshots for the pair inside [from, to], capture-time
// ordered, without market payloads.
func (r *PostgresSnapshotRepository) Between(ctx context.Context, eventID, bookmakerID uuid.UUID, from, to time.Time) ([]*models.Snapshot, error) {
	query := `
		SELECT id, event_id, bookmaker_id, capture_time
		FROM snapshots
		WHERE event_id = $1 AND bookmaker_id = $2
		  AND capture_time >= $3 AND capture_time <= $4
		ORDER BY capture_time
	`

	rows, err := r.db.GetPool().Query(ctx, query, eventID, bookmakerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*models.Snapshot
	for rows.Next() {
		s := &models.Snapshot{}
		if err := rows.Scan(&s.ID, &s.EventID, &s.BookmakerID, &s.CaptureTime); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// MarketHistory returns the capture-time ordered series for one market. The
// line predicate uses IS NOT DISTINCT FROM so an explicit line only matches
// rows carrying exactly that line; omitting it returns every row for the
// reference market id.
func (r *PostgresSnapshotRepository) MarketHistory(ctx context.Context, eventID, bookmakerID uuid.UUID, referenceMarketID string, line *float64, from, to time.Time) ([]MarketPoint, error) {
	query := `
		SELECT mo.capture_time, mo.line, mo.outcomes, mo.margin
		FROM market_odds mo
		JOIN snapshots s ON s.id = mo.snapshot_id AND s.capture_time = mo.capture_time
		WHERE s.event_id = $1 AND s.bookmaker_id = $2
		  AND mo.reference_market_id = $3
		  AND mo.capture_time >= $4 AND mo.capture_time <= $5
	`
	args := []any{eventID, bookmakerID, referenceMarketID, from, to}

	if line != nil {
		args = append(args, *line)
		query += fmt.Sprintf(` AND mo.line IS NOT DISTINCT FROM $%d`, len(args))
	}
	query += ` ORDER BY mo.capture_time`

	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query market history: %w", err)
	}
	defer rows.Close()

	var points []MarketPoint
	for rows.Next() {
		var (
			p   MarketPoint
			raw []byte
		)
		if err := rows.Scan(&p.CaptureTime, &p.Line, &raw, &p.Margin); err != nil {
			return nil, fmt.Errorf("failed to scan market point: %w", err)
		}
		if err := json.Unmarshal(raw, &p.Outcomes); err != nil {
			return nil, fmt.Errorf("failed to decode outcomes: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// ReassignEvent moves snapshots between events during singleton merge, so
// odds observed against the duplicate survive under the surviving event.
func (r *PostgresSnapshotRepository) ReassignEvent(ctx context.Context, fromEventID, toEventID uuid.UUID) error {
	_, err := r.db.GetPool().Exec(ctx,
		`UPDATE snapshots SET event_id = $1 WHERE event_id = $2`, toEventID, fromEventID)
	if err != nil {
		return fmt.Errorf("failed to reassign snapshots: %w", err)
	}
	return nil
}

// DeleteByEvent removes every snapshot and market row for an event; used by
// the matcher when merging singleton events.
func (r *PostgresSnapshotRepository) DeleteByEvent(ctx context.Context, eventID uuid.UUID) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			DELETE FROM market_odds mo
			USING snapshots s
			WHERE mo.snapshot_id = s.id AND mo.capture_time = s.capture_time
			  AND s.event_id = $1
		`, eventID)
		if err != nil {
			return fmt.Errorf("failed to delete market odds: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM snapshots WHERE event_id = $1`, eventID); err != nil {
			return fmt.Errorf("failed to delete snapshots: %w", err)
		}
		return nil
	})
}

func (r *PostgresSnapshotRepository) loadMarkets(ctx context.Context, snapshotID uuid.UUID) ([]models.MarketOdds, error) {
	query := `
		SELECT id, snapshot_id, reference_market_id, reference_market_name, line, outcomes, margin
		FROM market_odds
		WHERE snapshot_id = $1
		ORDER BY reference_market_id, line NULLS FIRST
	`

	rows, err := r.db.GetPool().Query(ctx, query, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to load market odds: %w", err)
	}
	defer rows.Close()

	var markets []models.MarketOdds
	for rows.Next() {
		var (
			m   models.MarketOdds
			raw []byte
		)
		err := rows.Scan(&m.ID, &m.SnapshotID, &m.ReferenceMarketID, &m.ReferenceMarketName, &m.Line, &raw, &m.Margin)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market odds: %w", err)
		}
		if err := json.Unmarshal(raw, &m.Outcomes); err != nil {
			return nil, fmt.Errorf("failed to decode outcomes: %w", err)
		}
		markets = append(markets, m)
	}
	return markets, rows.Err()
}
