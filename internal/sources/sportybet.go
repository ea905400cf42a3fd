package sources

import (
	"context"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
	"github.com/yourusername/odds-radar/internal/scrape"
)

// SportyBetSource adapts the sportybet client: listing discovery, then
// per-event detail fetches under the client's semaphore.
type SportyBetSource struct {
	client     *scrape.SportyBetClient
	normalizer *normalize.SportyBetNormalizer
}

// NewSportyBetSource creates the sportybet pipeline backend.
func NewSportyBetSource(client *scrape.SportyBetClient, normalizer *normalize.SportyBetNormalizer) *SportyBetSource {
	return &SportyBetSource{client: client, normalizer: normalizer}
}

// Platform identifies this source.
func (s *SportyBetSource) Platform() models.Platform {
	return models.PlatformSportyBet
}

// Discover lists upcoming event ids.
func (s *SportyBetSource) Discover(ctx context.Context, scope Scope) ([]string, error) {
	summaries, err := s.client.FetchEventSummaries(ctx, scope.TournamentID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(summaries))
	for _, sum := range summaries {
		ids = append(ids, sum.EventID)
	}
	return ids, nil
}

// Fetch pulls every event's detail payload.
func (s *SportyBetSource) Fetch(ctx context.Context, ids []string) ([]FetchedEvent, []error) {
	events, errs := s.client.FetchEventsDetails(ctx, ids)

	fetched := make([]FetchedEvent, 0, len(events))
	for _, ev := range events {
		ev := ev
		fetched = append(fetched, FetchedEvent{
			ExternalEventID: ev.EventID,
			CorrelationID:   correlationPtr(ev.CorrelationID),
			HomeTeam:        ev.HomeTeam,
			AwayTeam:        ev.AwayTeam,
			KickoffTime:     kickoffFromMillis(ev.KickoffMillis),
			SportName:       ev.SportName,
			Normalize: func() ([]normalize.MappedMarket, []*normalize.MappingError) {
				return s.normalizer.Normalize(&ev)
			},
		})
	}
	return fetched, errs
}

// CheckHealth probes the platform.
func (s *SportyBetSource) CheckHealth(ctx context.Context) scrape.HealthStatus {
	return s.client.CheckHealth(ctx)
}

// Close releases the client's connection pool.
func (s *SportyBetSource) Close() {
	s.client.Close()
}
