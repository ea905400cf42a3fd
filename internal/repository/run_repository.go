package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/models"
)

// PostgresRunRepository implements RunRepository for PostgreSQL.
type PostgresRunRepository struct {
	db *database.DB
}

// NewPostgresRunRepository creates a new run repository.
func NewPostgresRunRepository(db *database.DB) RunRepository {
	return &PostgresRunRepository{db: db}
}

// Create inserts a new run row.
func (r *PostgresRunRepository) Create(ctx context.Context, run *models.ScrapeRun) error {
	timings, status, err := encodeRunMaps(run)
	if err != nil {
		return err
	}

	platforms := make([]string, len(run.Platforms))
	for i, p := range run.Platforms {
		platforms[i] = string(p)
	}

	query := `
		INSERT INTO scrape_runs (started_at, status, trigger, platforms, events_scraped,
		                         events_failed, platform_timings, platform_status,
		                         current_phase, current_platform)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err = r.db.GetPool().QueryRow(ctx, query,
		run.StartedAt, run.Status, run.Trigger, platforms, run.EventsScraped,
		run.EventsFailed, timings, status, run.CurrentPhase, run.CurrentPlatform,
	).Scan(&run.ID)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}
	return nil
}

// Update persists the mutable fields of a run.
func (r *PostgresRunRepository) Update(ctx context.Context, run *models.ScrapeRun) error {
	timings, status, err := encodeRunMaps(run)
	if err != nil {
		return err
	}

	query := `
		UPDATE scrape_runs
		SET completed_at = $2, status = $3, events_scraped = $4, events_failed = $5,
		    platform_timings = $6, platform_status = $7, current_phase = $8, current_platform = $9
		WHERE id = $1
	`

	tag, err := r.db.GetPool().Exec(ctx, query,
		run.ID, run.CompletedAt, run.Status, run.EventsScraped, run.EventsFailed,
		timings, status, run.CurrentPhase, run.CurrentPlatform,
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

const runColumns = `id, started_at, completed_at, status, trigger, platforms, events_scraped,
       events_failed, platform_timings, platform_status, current_phase, current_platform`

// GetByID fetches one run.
func (r *PostgresRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ScrapeRun, error) {
	query := `SELECT ` + runColumns + ` FROM scrape_runs WHERE id = $1`
	run, err := scanRun(r.db.GetPool().QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return run, err
}

// List returns runs in reverse chronological order.
func (r *PostgresRunRepository) List(ctx context.Context, limit, offset int) ([]*models.ScrapeRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `SELECT ` + runColumns + ` FROM scrape_runs ORDER BY started_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.GetPool().Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ScrapeRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Stats returns total and 24h run counts plus the average terminal run
// duration over the last 24 hours.
func (r *PostgresRunRepository) Stats(ctx context.Context) (*RunStats, error) {
	stats := &RunStats{}
	err := r.db.GetPool().QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE started_at > now() - interval '24 hours'),
		       coalesce(avg(extract(epoch FROM completed_at - started_at))
		                FILTER (WHERE completed_at IS NOT NULL
		                        AND started_at > now() - interval '24 hours'), 0)
		FROM scrape_runs
	`).Scan(&stats.TotalRuns, &stats.Runs24h, &stats.AvgDurationSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to compute run stats: %w", err)
	}
	return stats, nil
}

// AppendPhaseLog appends one audit trail row. Any still-open row for the
// same run and platform is closed first, so every phase carries an end time
// once its successor starts.
func (r *PostgresRunRepository) AppendPhaseLog(ctx context.Context, entry *models.ScrapePhaseLog) error {
	closePrior := `
		UPDATE scrape_phase_logs
		SET ended_at = $3
		WHERE run_id = $1 AND platform IS NOT DISTINCT FROM $2 AND ended_at IS NULL
	`
	if _, err := r.db.GetPool().Exec(ctx, closePrior, entry.RunID, entry.Platform, entry.StartedAt); err != nil {
		return fmt.Errorf("failed to close prior phase log: %w", err)
	}

	query := `
		INSERT INTO scrape_phase_logs (run_id, platform, phase, started_at, ended_at,
		                               events_processed, message, error_details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.GetPool().QueryRow(ctx, query,
		entry.RunID, entry.Platform, entry.Phase, entry.StartedAt, entry.EndedAt,
		entry.EventsProcessed, entry.Message, entry.ErrorDetails,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append phase log: %w", err)
	}
	return nil
}

// ListPhaseLogs returns the audit trail for one run in append order.
func (r *PostgresRunRepository) ListPhaseLogs(ctx context.Context, runID uuid.UUID) ([]*models.ScrapePhaseLog, error) {
	query := `
		SELECT id, run_id, platform, phase, started_at, ended_at, events_processed, message, error_details
		FROM scrape_phase_logs
		WHERE run_id = $1
		ORDER BY started_at
	`

	rows, err := r.db.GetPool().Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list phase logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.ScrapePhaseLog
	for rows.Next() {
		entry := &models.ScrapePhaseLog{}
		err := rows.Scan(
			&entry.ID, &entry.RunID, &entry.Platform, &entry.Phase, &entry.StartedAt,
			&entry.EndedAt, &entry.EventsProcessed, &entry.Message, &entry.ErrorDetails,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase log: %w", err)
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// RecordError persists one scrape error, message capped to the column size.
func (r *PostgresRunRepository) RecordError(ctx context.Context, scrapeErr *models.ScrapeError) error {
	query := `
		INSERT INTO scrape_errors (run_id, platform, error_type, message, occurred_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.GetPool().QueryRow(ctx, query,
		scrapeErr.RunID, scrapeErr.Platform, scrapeErr.ErrorType,
		models.TruncateMessage(scrapeErr.Message), scrapeErr.OccurredAt,
	).Scan(&scrapeErr.ID)
	if err != nil {
		return fmt.Errorf("failed to record scrape error: %w", err)
	}
	return nil
}

// ListErrors returns a page of a run's errors for drill-in.
func (r *PostgresRunRepository) ListErrors(ctx context.Context, runID uuid.UUID, limit, offset int) ([]*models.ScrapeError, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `
		SELECT id, run_id, platform, error_type, message, occurred_at
		FROM scrape_errors
		WHERE run_id = $1
		ORDER BY occurred_at
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.GetPool().Query(ctx, query, runID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrape errors: %w", err)
	}
	defer rows.Close()

	var errs []*models.ScrapeError
	for rows.Next() {
		e := &models.ScrapeError{}
		if err := rows.Scan(&e.ID, &e.RunID, &e.Platform, &e.ErrorType, &e.Message, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan scrape error: %w", err)
		}
		errs = append(errs, e)
	}
	return errs, rows.Err()
}

func encodeRunMaps(run *models.ScrapeRun) ([]byte, []byte, error) {
	timings, err := json.Marshal(run.PlatformTimings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode platform timings: %w", err)
	}
	status, err := json.Marshal(run.PlatformStatus)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode platform status: %w", err)
	}
	return timings, status, nil
}

func scanRun(row pgx.Row) (*models.ScrapeRun, error) {
	run := &models.ScrapeRun{}
	var (
		platforms []string
		timings   []byte
		status    []byte
	)

	err := row.Scan(
		&run.ID, &run.StartedAt, &run.CompletedAt, &run.Status, &run.Trigger,
		&platforms, &run.EventsScraped, &run.EventsFailed, &timings, &status,
		&run.CurrentPhase, &run.CurrentPlatform,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	run.Platforms = make([]models.Platform, len(platforms))
	for i, p := range platforms {
		run.Platforms[i] = models.Platform(p)
	}
	if err := json.Unmarshal(timings, &run.PlatformTimings); err != nil {
		return nil, fmt.Errorf("failed to decode platform timings: %w", err)
	}
	if err := json.Unmarshal(status, &run.PlatformStatus); err != nil {
		return nil, fmt.Errorf("failed to decode platform status: %w", err)
	}
	return run, nil
}
