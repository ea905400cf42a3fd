package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/models"
)

// PostgresFixtureLinkRepository implements FixtureLinkRepository for
// PostgreSQL.
type PostgresFixtureLinkRepository struct {
	db *database.DB
}

// NewPostgresFixtureLinkRepository creates a new fixture link repository.
func NewPostgresFixtureLinkRepository(db *database.DB) FixtureLinkRepository {
	return &PostgresFixtureLinkRepository{db: db}
}

// Create inserts a fixture link. Unique violations come back as
// models.ErrDuplicate so the matcher can re-resolve.
func (r *PostgresFixtureLinkRepository) Create(ctx context.Context, link *models.FixtureLink) error {
	query := `
		INSERT INTO fixture_links (event_id, bookmaker_id, external_event_id, correlation_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.GetPool().QueryRow(ctx, query,
		link.EventID, link.BookmakerID, link.ExternalEventID, link.CorrelationID,
	).Scan(&link.ID, &link.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return models.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create fixture link: %w", err)
	}
	return nil
}

// GetByExternalID fetches the link for a bookmaker's external event id.
func (r *PostgresFixtureLinkRepository) GetByExternalID(ctx context.Context, bookmakerID uuid.UUID, externalEventID string) (*models.FixtureLink, error) {
	query := `
		SELECT id, event_id, bookmaker_id, external_event_id, correlation_id, created_at
		FROM fixture_links
		WHERE bookmaker_id = $1 AND external_event_id = $2
	`

	link := &models.FixtureLink{}
	err := r.db.GetPool().QueryRow(ctx, query, bookmakerID, externalEventID).Scan(
		&link.ID, &link.EventID, &link.BookmakerID, &link.ExternalEventID,
		&link.CorrelationID, &link.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fixture link: %w", err)
	}
	return link, nil
}

// ListByEvent returns every bookmaker's link for one event.
func (r *PostgresFixtureLinkRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.FixtureLink, error) {
	query := `
		SELECT id, event_id, bookmaker_id, external_event_id, correlation_id, created_at
		FROM fixture_links
		WHERE event_id = $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixture links: %w", err)
	}
	defer rows.Close()

	var links []*models.FixtureLink
	for rows.Next() {
		link := &models.FixtureLink{}
		err := rows.Scan(
			&link.ID, &link.EventID, &link.BookmakerID, &link.ExternalEventID,
			&link.CorrelationID, &link.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixture link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// Reassign moves every link from one event to another during singleton
// merge.
func (r *PostgresFixtureLinkRepository) Reassign(ctx context.Context, fromEventID, toEventID uuid.UUID) error {
	_, err := r.db.GetPool().Exec(ctx,
		`UPDATE fixture_links SET event_id = $1 WHERE event_id = $2`, toEventID, fromEventID)
	if err != nil {
		return fmt.Errorf("failed to reassign fixture links: %w", err)
	}
	return nil
}

// CoverageStats aggregates correlation coverage. Counts are distinct by
// correlation id so a bookmaker re-listing the same fixture counts once.
func (r *PostgresFixtureLinkRepository) CoverageStats(ctx context.Context) (*CoverageStats, error) {
	stats := &CoverageStats{PerBookmakerCount: make(map[string]int)}

	err := r.db.GetPool().QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE correlation_id IS NOT NULL)
		FROM events
	`).Scan(&stats.TotalEvents, &stats.MatchedEvents)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	rows, err := r.db.GetPool().Query(ctx, `
		SELECT b.slug, count(DISTINCT fl.correlation_id)
		FROM fixture_links fl
		JOIN bookmakers b ON b.id = fl.bookmaker_id
		WHERE fl.correlation_id IS NOT NULL
		GROUP BY b.slug
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count per-bookmaker coverage: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slug string
		var count int
		if err := rows.Scan(&slug, &count); err != nil {
			return nil, fmt.Errorf("failed to scan coverage row: %w", err)
		}
		stats.PerBookmakerCount[slug] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Events seen by at least one competitor but never by the reference
	// bookmaker.
	err = r.db.GetPool().QueryRow(ctx, `
		SELECT count(DISTINCT e.correlation_id)
		FROM events e
		WHERE e.correlation_id IS NOT NULL
		  AND EXISTS (
		      SELECT 1 FROM fixture_links fl
		      JOIN bookmakers b ON b.id = fl.bookmaker_id
		      WHERE fl.event_id = e.id AND b.role = 'competitor')
		  AND NOT EXISTS (
		      SELECT 1 FROM fixture_links fl
		      JOIN bookmakers b ON b.id = fl.bookmaker_id
		      WHERE fl.event_id = e.id AND b.role = 'reference')
	`).Scan(&stats.CompetitorOnlyCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count competitor-only events: %w", err)
	}

	return stats, nil
}
