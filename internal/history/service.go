// Package history is the read-only query surface over stored snapshots:
// event listings, full detail, odds and margin time-series, coverage stats.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/repository"
)

// defaultWindow is the lookback applied when a query gives no time range.
const defaultWindow = 30 * 24 * time.Hour

// keyMarkets are the reference market ids inlined into event listings:
// 1X2, total goals and both-teams-to-score.
var keyMarkets = map[string]*float64{
	"3743": nil,
	"3962": floatPtr(2.5),
	"3795": nil,
}

func floatPtr(f float64) *float64 { return &f }

// KeyMarket is one inlined market summary on a listing row.
type KeyMarket struct {
	ReferenceMarketID string           `json:"reference_market_id"`
	Line              *float64         `json:"line,omitempty"`
	Outcomes          []models.Outcome `json:"outcomes"`
	Margin            float64          `json:"margin"`
}

// EventSummary is one listing row: the event plus each bookmaker's latest
// key-market odds.
type EventSummary struct {
	Event      *models.Event           `json:"event"`
	Bookmakers map[string][]*KeyMarket `json:"bookmakers"`
}

// EventPage is a paged listing result.
type EventPage struct {
	Events   []*EventSummary `json:"events"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// EventDetail is the full per-event view: every bookmaker's complete market
// list from its latest snapshot.
type EventDetail struct {
	Event              *models.Event                  `json:"event"`
	MarketsByBookmaker map[string][]models.MarketOdds `json:"markets_by_bookmaker"`
	CapturedAt         map[string]time.Time           `json:"captured_at"`
}

// MarginPoint is one step of a margin-only series.
type MarginPoint struct {
	CaptureTime time.Time `json:"capture_time"`
	Margin      float64   `json:"margin"`
}

// Service answers read queries. It never mutates state.
type Service struct {
	events    repository.EventRepository
	links     repository.FixtureLinkRepository
	snapshots repository.SnapshotRepository
	bookies   repository.BookmakerRepository
	logger    *logrus.Entry
}

// NewService creates a history query service.
func NewService(
	events repository.EventRepository,
	links repository.FixtureLinkRepository,
	snapshots repository.SnapshotRepository,
	bookies repository.BookmakerRepository,
	logger *logrus.Logger,
) *Service {
	return &Service{
		events:    events,
		links:     links,
		snapshots: snapshots,
		bookies:   bookies,
		logger:    logger.WithField("component", "history"),
	}
}

// ListEvents returns a page of events with per-bookmaker key-market
// summaries from each one's latest snapshot.
func (s *Service) ListEvents(ctx context.Context, filter repository.EventFilter) (*EventPage, error) {
	if filter.KickoffFrom.IsZero() {
		filter.KickoffFrom = time.Now().UTC().Add(-defaultWindow)
	}
	if filter.KickoffTo.IsZero() {
		filter.KickoffTo = time.Now().UTC().Add(defaultWindow)
	}
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	events, total, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	bookmakers, err := s.bookies.List(ctx)
	if err != nil {
		return nil, err
	}

	page := &EventPage{
		Events:   make([]*EventSummary, 0, len(events)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	for _, ev := range events {
		summary := &EventSummary{
			Event:      ev,
			Bookmakers: make(map[string][]*KeyMarket),
		}
		for _, b := range bookmakers {
			snap, err := s.snapshots.Latest(ctx, ev.ID, b.ID)
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if km := extractKeyMarkets(snap.Markets); len(km) > 0 {
				summary.Bookmakers[b.Slug] = km
			}
		}
		page.Events = append(page.Events, summary)
	}
	return page, nil
}

// GetEventDetail returns the event with every bookmaker's full market list
// from its latest snapshot.
func (s *Service) GetEventDetail(ctx context.Context, eventID uuid.UUID) (*EventDetail, error) {
	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	bookmakers, err := s.bookies.List(ctx)
	if err != nil {
		return nil, err
	}

	detail := &EventDetail{
		Event:              ev,
		MarketsByBookmaker: make(map[string][]models.MarketOdds),
		CapturedAt:         make(map[string]time.Time),
	}
	for _, b := range bookmakers {
		snap, err := s.snapshots.Latest(ctx, eventID, b.ID)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		detail.MarketsByBookmaker[b.Slug] = snap.Markets
		detail.CapturedAt[b.Slug] = snap.CaptureTime
	}
	return detail, nil
}

// OddsHistory returns the outcome+margin series for one market on one
// bookmaker. The line filter is passed through verbatim; the store applies
// it whenever non-nil.
func (s *Service) OddsHistory(ctx context.Context, eventID uuid.UUID, referenceMarketID, bookmakerSlug string, line *float64, from, to time.Time) ([]repository.MarketPoint, error) {
	bookmaker, err := s.bookies.GetBySlug(ctx, bookmakerSlug)
	if err != nil {
		return nil, err
	}
	from, to = defaultRange(from, to)
	return s.snapshots.MarketHistory(ctx, eventID, bookmaker.ID, referenceMarketID, line, from, to)
}

// MarginHistory returns the margin-only series for one market.
func (s *Service) MarginHistory(ctx context.Context, eventID uuid.UUID, referenceMarketID, bookmakerSlug string, line *float64, from, to time.Time) ([]MarginPoint, error) {
	points, err := s.OddsHistory(ctx, eventID, referenceMarketID, bookmakerSlug, line, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]MarginPoint, len(points))
	for i, p := range points {
		out[i] = MarginPoint{CaptureTime: p.CaptureTime, Margin: p.Margin}
	}
	return out, nil
}

// CoverageStats reports fixture correlation coverage across bookmakers.
func (s *Service) CoverageStats(ctx context.Context) (*repository.CoverageStats, error) {
	return s.links.CoverageStats(ctx)
}

// UnmatchedEvents lists events with partial platform coverage.
func (s *Service) UnmatchedEvents(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	return s.events.ListUnmatched(ctx, limit, offset)
}

// extractKeyMarkets picks the key-market rows out of a snapshot's markets.
// For the specifier entry only the configured line qualifies.
func extractKeyMarkets(markets []models.MarketOdds) []*KeyMarket {
	var out []*KeyMarket
	for i := range markets {
		m := &markets[i]
		wantLine, ok := keyMarkets[m.ReferenceMarketID]
		if !ok {
			continue
		}
		if wantLine != nil && (m.Line == nil || *m.Line != *wantLine) {
			continue
		}
		if wantLine == nil && m.Line != nil {
			continue
		}
		out = append(out, &KeyMarket{
			ReferenceMarketID: m.ReferenceMarketID,
			Line:              m.Line,
			Outcomes:          m.Outcomes,
			Margin:            m.Margin,
		})
	}
	return out
}

func defaultRange(from, to time.Time) (time.Time, time.Time) {
	if to.IsZero() {
		to = time.Now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-defaultWindow)
	}
	return from, to
}
