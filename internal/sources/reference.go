package sources

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
	"github.com/yourusername/odds-radar/internal/scrape"
)

// ReferenceSource adapts the reference client. The listing call already
// carries full market payloads, so Discover caches them and Fetch serves
// from the cache instead of re-requesting.
type ReferenceSource struct {
	client     *scrape.ReferenceClient
	normalizer *normalize.ReferenceNormalizer

	mu    sync.Mutex
	cache map[string]normalize.ReferenceEvent
}

// NewReferenceSource creates the reference pipeline backend.
func NewReferenceSource(client *scrape.ReferenceClient, normalizer *normalize.ReferenceNormalizer) *ReferenceSource {
	return &ReferenceSource{
		client:     client,
		normalizer: normalizer,
		cache:      make(map[string]normalize.ReferenceEvent),
	}
}

// Platform identifies this source.
func (s *ReferenceSource) Platform() models.Platform {
	return models.PlatformReference
}

// Discover lists upcoming events and caches their payloads for Fetch.
func (s *ReferenceSource) Discover(ctx context.Context, scope Scope) ([]string, error) {
	events, err := s.client.FetchEvents(ctx, scope.SportID, scope.TournamentID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(events))
	for _, ev := range events {
		s.cache[ev.EventID] = ev
		ids = append(ids, ev.EventID)
	}
	return ids, nil
}

// Fetch serves events from the discovery cache, falling back to a per-event
// request for ids discovered elsewhere.
func (s *ReferenceSource) Fetch(ctx context.Context, ids []string) ([]FetchedEvent, []error) {
	var (
		fetched []FetchedEvent
		errs    []error
	)
	for _, id := range ids {
		s.mu.Lock()
		ev, ok := s.cache[id]
		s.mu.Unlock()
		if !ok {
			fresh, err := s.client.FetchEvent(ctx, id)
			if err != nil {
				errs = append(errs, fmt.Errorf("event %s: %w", id, err))
				continue
			}
			ev = *fresh
		}
		fetched = append(fetched, s.adapt(ev))
	}
	return fetched, errs
}

func (s *ReferenceSource) adapt(ev normalize.ReferenceEvent) FetchedEvent {
	return FetchedEvent{
		ExternalEventID: ev.EventID,
		CorrelationID:   correlationPtr(ev.CorrelationID),
		HomeTeam:        ev.HomeTeam,
		AwayTeam:        ev.AwayTeam,
		KickoffTime:     kickoffFromMillis(ev.KickoffMillis),
		SportName:       "Football",
		Normalize: func() ([]normalize.MappedMarket, []*normalize.MappingError) {
			return s.normalizer.Normalize(&ev)
		},
	}
}

// CheckHealth probes the platform.
func (s *ReferenceSource) CheckHealth(ctx context.Context) scrape.HealthStatus {
	return s.client.CheckHealth(ctx)
}

// Close releases the client's connection pool.
func (s *ReferenceSource) Close() {
	s.client.Close()
}
