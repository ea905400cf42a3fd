package sources

import (
	"context"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
	"github.com/yourusername/odds-radar/internal/scrape"
)

// Bet9jaSource adapts the bet9ja client: listing discovery, then per-event
// odds dictionary fetches under the client's semaphore.
type Bet9jaSource struct {
	client     *scrape.Bet9jaClient
	normalizer *normalize.Bet9jaNormalizer
}

// NewBet9jaSource creates the bet9ja pipeline backend.
func NewBet9jaSource(client *scrape.Bet9jaClient, normalizer *normalize.Bet9jaNormalizer) *Bet9jaSource {
	return &Bet9jaSource{client: client, normalizer: normalizer}
}

// Platform identifies this source.
func (s *Bet9jaSource) Platform() models.Platform {
	return models.PlatformBet9ja
}

// Discover lists upcoming event ids.
func (s *Bet9jaSource) Discover(ctx context.Context, scope Scope) ([]string, error) {
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

// Fetch pulls every event's odds dictionary.
func (s *Bet9jaSource) Fetch(ctx context.Context, ids []string) ([]FetchedEvent, []error) {
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
			SportName:       "Football",
			Normalize: func() ([]normalize.MappedMarket, []*normalize.MappingError) {
				return s.normalizer.Normalize(&ev)
			},
		})
	}
	return fetched, errs
}

// CheckHealth probes the platform.
func (s *Bet9jaSource) CheckHealth(ctx context.Context) scrape.HealthStatus {
	return s.client.CheckHealth(ctx)
}

// Close releases the client's connection pool.
func (s *Bet9jaSource) Close() {
	s.client.Close()
}
