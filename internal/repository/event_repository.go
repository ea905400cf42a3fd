package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/models"
)

// PostgresEventRepository implements EventRepository for PostgreSQL.
type PostgresEventRepository struct {
	db *database.DB
}

// NewPostgresEventRepository creates a new event repository.
func NewPostgresEventRepository(db *database.DB) EventRepository {
	return &PostgresEventRepository{db: db}
}

const eventColumns = `id, sport_id, tournament_id, home_team, away_team, kickoff_time, correlation_id, created_at, updated_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	ev := &models.Event{}
	err := row.Scan(
		&ev.ID, &ev.SportID, &ev.TournamentID, &ev.HomeTeam, &ev.AwayTeam,
		&ev.KickoffTime, &ev.CorrelationID, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	return ev, nil
}

// Create inserts a new event. A unique violation on correlation_id comes
// back as models.ErrDuplicate so the matcher can retry its lookup.
func (r *PostgresEventRepository) Create(ctx context.Context, ev *models.Event) error {
	query := `
		INSERT INTO events (sport_id, tournament_id, home_team, away_team, kickoff_time, correlation_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.GetPool().QueryRow(ctx, query,
		ev.SportID, ev.TournamentID, ev.HomeTeam, ev.AwayTeam, ev.KickoffTime, ev.CorrelationID,
	).Scan(&ev.ID, &ev.CreatedAt, &ev.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return models.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByID fetches one event.
func (r *PostgresEventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(r.db.GetPool().QueryRow(ctx, query, id))
}

// GetByCorrelationID fetches the event carrying the given correlation id.
func (r *PostgresEventRepository) GetByCorrelationID(ctx context.Context, correlationID string) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE correlation_id = $1`
	return scanEvent(r.db.GetPool().QueryRow(ctx, query, correlationID))
}

// FindByTeamsAndKickoff is the fuzzy fallback used when a source publishes a
// fixture without a correlation id.
func (r *PostgresEventRepository) FindByTeamsAndKickoff(ctx context.Context, homeTeam, awayTeam string, kickoff time.Time, window time.Duration) (*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE lower(home_team) = lower($1)
		  AND lower(away_team) = lower($2)
		  AND kickoff_time BETWEEN $3 AND $4
		ORDER BY abs(extract(epoch FROM kickoff_time - $5::timestamptz))
		LIMIT 1
	`
	return scanEvent(r.db.GetPool().QueryRow(ctx, query,
		homeTeam, awayTeam, kickoff.Add(-window), kickoff.Add(window), kickoff,
	))
}

// SetCorrelationID attaches a correlation id to an orphan event. A unique
// violation means another event already carries the id; the caller merges.
func (r *PostgresEventRepository) SetCorrelationID(ctx context.Context, id uuid.UUID, correlationID string) error {
	tag, err := r.db.GetPool().Exec(ctx, `
		UPDATE events SET correlation_id = $2, updated_at = now()
		WHERE id = $1
	`, id, correlationID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return models.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to set correlation id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListUncorrelated returns events without a correlation id, oldest first.
func (r *PostgresEventRepository) ListUncorrelated(ctx context.Context, limit int) ([]*models.Event, error) {
	if limit <= 0 || limit > 1000 {
		limit = 500
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE correlation_id IS NULL
		ORDER BY created_at
		LIMIT $1
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uncorrelated events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// FindCorrelatedTwin looks for a correlated event describing the same
// fixture as the orphan.
func (r *PostgresEventRepository) FindCorrelatedTwin(ctx context.Context, orphan *models.Event, window time.Duration) (*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id <> $1
		  AND correlation_id IS NOT NULL
		  AND lower(home_team) = lower($2)
		  AND lower(away_team) = lower($3)
		  AND kickoff_time BETWEEN $4 AND $5
		ORDER BY abs(extract(epoch FROM kickoff_time - $6::timestamptz))
		LIMIT 1
	`
	return scanEvent(r.db.GetPool().QueryRow(ctx, query,
		orphan.ID, orphan.HomeTeam, orphan.AwayTeam,
		orphan.KickoffTime.Add(-window), orphan.KickoffTime.Add(window), orphan.KickoffTime,
	))
}

// Delete removes an event. Fixture links cascade; the caller is responsible
// for snapshots.
func (r *PostgresEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.GetPool().Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

// List returns a page of events and the total count for the filter.
func (r *PostgresEventRepository) List(ctx context.Context, filter EventFilter) ([]*models.Event, int, error) {
	where := `WHERE e.kickoff_time >= $1 AND e.kickoff_time <= $2`
	args := []any{filter.KickoffFrom, filter.KickoffTo}

	if filter.TournamentID != nil {
		args = append(args, *filter.TournamentID)
		where += fmt.Sprintf(` AND e.tournament_id = $%d`, len(args))
	}
	if filter.SportID != nil {
		args = append(args, *filter.SportID)
		where += fmt.Sprintf(` AND e.sport_id = $%d`, len(args))
	}
	if !filter.IncludeStarted {
		args = append(args, time.Now().UTC())
		where += fmt.Sprintf(` AND e.kickoff_time > $%d`, len(args))
	}
	if filter.MinBookmakers > 0 {
		args = append(args, filter.MinBookmakers)
		where += fmt.Sprintf(
			` AND (SELECT count(*) FROM fixture_links fl WHERE fl.event_id = e.id) >= $%d`, len(args))
	}

	var total int
	countQuery := `SELECT count(*) FROM events e ` + where
	if err := r.db.GetPool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	pageSize := filter.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	args = append(args, pageSize, (page-1)*pageSize)

	query := fmt.Sprintf(`
		SELECT e.id, e.sport_id, e.tournament_id, e.home_team, e.away_team,
		       e.kickoff_time, e.correlation_id, e.created_at, e.updated_at
		FROM events e
		%s
		ORDER BY e.kickoff_time
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events, err := collectEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListUnmatched returns events linked by fewer bookmakers than are
// registered, ordered by kickoff.
func (r *PostgresEventRepository) ListUnmatched(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	query := `
		SELECT e.id, e.sport_id, e.tournament_id, e.home_team, e.away_team,
		       e.kickoff_time, e.correlation_id, e.created_at, e.updated_at
		FROM events e
		WHERE (SELECT count(*) FROM fixture_links fl WHERE fl.event_id = e.id)
		      < (SELECT count(*) FROM bookmakers)
		ORDER BY e.kickoff_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.GetPool().Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list unmatched events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func collectEvents(rows pgx.Rows) ([]*models.Event, error) {
	var events []*models.Event
	for rows.Next() {
		ev := &models.Event{}
		err := rows.Scan(
			&ev.ID, &ev.SportID, &ev.TournamentID, &ev.HomeTeam, &ev.AwayTeam,
			&ev.KickoffTime, &ev.CorrelationID, &ev.CreatedAt, &ev.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
