// Package repository holds the PostgreSQL persistence layer. Every
// repository wraps the shared pool and maps pgx.ErrNoRows to
// models.ErrNotFound.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/odds-radar/internal/models"
)

// BookmakerRepository manages the bookmaker catalogue.
type BookmakerRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Bookmaker, error)
	// EnsureExists registers a bookmaker on first use and returns the row
	// either way.
	EnsureExists(ctx context.Context, slug, displayName string, role models.BookmakerRole) (*models.Bookmaker, error)
	List(ctx context.Context) ([]*models.Bookmaker, error)
}

// CatalogRepository manages the sport -> tournament hierarchy.
type CatalogRepository interface {
	EnsureSport(ctx context.Context, name string) (*models.Sport, error)
	EnsureTournament(ctx context.Context, sportID uuid.UUID, name string, country *string) (*models.Tournament, error)
}

// EventFilter narrows event listings. Zero values mean "no filter".
type EventFilter struct {
	KickoffFrom    time.Time
	KickoffTo      time.Time
	TournamentID   *uuid.UUID
	SportID        *uuid.UUID
	MinBookmakers  int
	IncludeStarted bool
	Page           int
	PageSize       int
}

// EventRepository manages canonical events.
type EventRepository interface {
	Create(ctx context.Context, ev *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetByCorrelationID(ctx context.Context, correlationID string) (*models.Event, error)
	// FindByTeamsAndKickoff is the best-effort fallback for fixtures
	// without a correlation id: same team names, kickoff within the window.
	FindByTeamsAndKickoff(ctx context.Context, homeTeam, awayTeam string, kickoff time.Time, window time.Duration) (*models.Event, error)
	// SetCorrelationID attaches a late-arriving correlation id to an
	// orphan event; models.ErrDuplicate signals another event already
	// carries it.
	SetCorrelationID(ctx context.Context, id uuid.UUID, correlationID string) error
	// ListUncorrelated returns orphan events (null correlation id) for the
	// startup sweep.
	ListUncorrelated(ctx context.Context, limit int) ([]*models.Event, error)
	// FindCorrelatedTwin finds a correlated event describing the same
	// fixture as the orphan (same teams, kickoff within the window).
	FindCorrelatedTwin(ctx context.Context, orphan *models.Event, window time.Duration) (*models.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter EventFilter) ([]*models.Event, int, error)
	// ListUnmatched returns events covered by fewer bookmakers than exist.
	ListUnmatched(ctx context.Context, limit, offset int) ([]*models.Event, error)
}

// FixtureLinkRepository manages per-bookmaker fixture links.
type FixtureLinkRepository interface {
	Create(ctx context.Context, link *models.FixtureLink) error
	GetByExternalID(ctx context.Context, bookmakerID uuid.UUID, externalEventID string) (*models.FixtureLink, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*models.FixtureLink, error)
	// Reassign moves every link from one event to another; used when two
	// singleton events turn out to be the same fixture.
	Reassign(ctx context.Context, fromEventID, toEventID uuid.UUID) error
	CoverageStats(ctx context.Context) (*CoverageStats, error)
}

// CoverageStats summarizes how well fixtures correlate across bookmakers.
// Counts are distinct by correlation id, not raw link rows.
type CoverageStats struct {
	TotalEvents         int            `json:"total_events"`
	MatchedEvents       int            `json:"matched_events"`
	PerBookmakerCount   map[string]int `json:"per_bookmaker_count"`
	CompetitorOnlyCount int            `json:"competitor_only_count"`
}

// MarketPoint is one step of a market's odds time-series.
type MarketPoint struct {
	CaptureTime time.Time        `json:"capture_time"`
	Line        *float64         `json:"line,omitempty"`
	Outcomes    []models.Outcome `json:"outcomes"`
	Margin      float64          `json:"margin"`
}

// SnapshotRepository is the snapshot store write and read surface.
type SnapshotRepository interface {
	// Append persists one snapshot with its market rows in a single
	// transaction and returns the new snapshot id. The store does not
	// deduplicate identical snapshots.
	Append(ctx context.Context, eventID, bookmakerID uuid.UUID, captureTime time.Time, markets []models.MarketOdds) (uuid.UUID, error)
	Latest(ctx context.Context, eventID, bookmakerID uuid.UUID) (*models.Snapshot, error)
	Between(ctx context.Context, eventID, bookmakerID uuid.UUID, from, to time.Time) ([]*models.Snapshot, error)
	// MarketHistory returns the ordered series for one market. The line
	// filter is applied whenever non-nil; without it a specifier market
	// would interleave lines.
	MarketHistory(ctx context.Context, eventID, bookmakerID uuid.UUID, referenceMarketID string, line *float64, from, to time.Time) ([]MarketPoint, error)
	// ReassignEvent moves every snapshot from one event to another; used
	// when the matcher merges singleton events.
	ReassignEvent(ctx context.Context, fromEventID, toEventID uuid.UUID) error
	DeleteByEvent(ctx context.Context, eventID uuid.UUID) error
}

// RunStats is the 24h dashboard aggregate.
type RunStats struct {
	TotalRuns          int     `json:"total_runs"`
	Runs24h            int     `json:"runs_24h"`
	AvgDurationSeconds float64 `json:"avg_duration_seconds"`
}

// RunRepository persists scrape run metadata, phase logs and errors.
type RunRepository interface {
	Create(ctx context.Context, run *models.ScrapeRun) error
	Update(ctx context.Context, run *models.ScrapeRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ScrapeRun, error)
	List(ctx context.Context, limit, offset int) ([]*models.ScrapeRun, error)
	Stats(ctx context.Context) (*RunStats, error)
	AppendPhaseLog(ctx context.Context, entry *models.ScrapePhaseLog) error
	ListPhaseLogs(ctx context.Context, runID uuid.UUID) ([]*models.ScrapePhaseLog, error)
	RecordError(ctx context.Context, scrapeErr *models.ScrapeError) error
	ListErrors(ctx context.Context, runID uuid.UUID, limit, offset int) ([]*models.ScrapeError, error)
}
