// Package sources adapts the per-platform scrape clients and normalizers to
// the uniform pipeline contract the orchestrator drives.
package sources

import (
	"context"
	"time"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
	"github.com/yourusername/odds-radar/internal/scrape"
)

// Scope narrows a discovery pass. Empty fields mean "everything upcoming".
type Scope struct {
	SportID      string
	TournamentID string
}

// FetchedEvent is one event pulled from a source, carrying enough fixture
// identity for matching plus a deferred normalization step over the raw
// payload.
type FetchedEvent struct {
	ExternalEventID string
	CorrelationID   *string
	HomeTeam        string
	AwayTeam        string
	KickoffTime     time.Time
	SportName       string
	TournamentName  string

	// Normalize maps the raw payload onto the canonical taxonomy. It is
	// pure; calling it twice yields equal output.
	Normalize func() ([]normalize.MappedMarket, []*normalize.MappingError)
}

// Source is one platform's pipeline backend: discover event ids, then fetch
// their payloads under the client's concurrency bound.
type Source interface {
	Platform() models.Platform
	Discover(ctx context.Context, scope Scope) ([]string, error)
	Fetch(ctx context.Context, ids []string) ([]FetchedEvent, []error)
	CheckHealth(ctx context.Context) scrape.HealthStatus
	Close()
}

// correlationPtr converts a wire correlation id to the nullable form; some
// feeds send the empty string for unmatched fixtures.
func correlationPtr(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

// kickoffFromMillis converts an epoch-milliseconds kickoff to UTC.
func kickoffFromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
