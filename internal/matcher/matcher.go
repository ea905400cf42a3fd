// Package matcher resolves source fixtures to canonical events via the
// SportRadar correlation id, creating events and fixture links lazily.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/repository"
)

// kickoffWindow bounds the fuzzy fallback for fixtures without a
// correlation id.
const kickoffWindow = 30 * time.Minute

// maxResolveAttempts bounds the retry loop around concurrent creations.
const maxResolveAttempts = 3

// SourceFixture is what a scraper knows about one fixture on its platform.
type SourceFixture struct {
	ExternalEventID string
	CorrelationID   *string
	HomeTeam        string
	AwayTeam        string
	KickoffTime     time.Time
	SportID         uuid.UUID
	TournamentID    uuid.UUID
}

// Matcher ties bookmaker fixtures to canonical events. All resolution is
// done at ingest; the one background task is the startup orphan sweep.
type Matcher struct {
	events    repository.EventRepository
	links     repository.FixtureLinkRepository
	snapshots repository.SnapshotRepository
	logger    *logrus.Entry
}

// New creates a matcher over the given repositories.
func New(events repository.EventRepository, links repository.FixtureLinkRepository, snapshots repository.SnapshotRepository, logger *logrus.Logger) *Matcher {
	return &Matcher{
		events:    events,
		links:     links,
		snapshots: snapshots,
		logger:    logger.WithField("component", "matcher"),
	}
}

// Resolve returns the canonical event id for a source fixture, creating the
// event and fixture link as needed. Constraint violations from concurrent
// resolution restart the lookup; by then the competing task's rows exist and
// the lookup path succeeds.
func (m *Matcher) Resolve(ctx context.Context, bookmakerID uuid.UUID, fx *SourceFixture) (uuid.UUID, error) {
	var lastErr error
	for attempt := 0; attempt < maxResolveAttempts; attempt++ {
		eventID, err := m.resolveOnce(ctx, bookmakerID, fx)
		if err == nil {
			return eventID, nil
		}
		if !errors.Is(err, models.ErrDuplicate) {
			return uuid.Nil, err
		}
		lastErr = err
	}
	return uuid.Nil, fmt.Errorf("fixture resolution did not converge for %s: %w", fx.ExternalEventID, lastErr)
}

func (m *Matcher) resolveOnce(ctx context.Context, bookmakerID uuid.UUID, fx *SourceFixture) (uuid.UUID, error) {
	link, err := m.links.GetByExternalID(ctx, bookmakerID, fx.ExternalEventID)
	switch {
	case err == nil:
		return m.reuseLink(ctx, link, fx)
	case errors.Is(err, models.ErrNotFound):
		// fall through to correlation lookup
	default:
		return uuid.Nil, err
	}

	if fx.CorrelationID != nil {
		return m.resolveByCorrelation(ctx, bookmakerID, fx)
	}
	return m.resolveByTeams(ctx, bookmakerID, fx)
}

// reuseLink returns the linked event, first unifying it with a correlated
// twin if this scrape is the one that finally brings the correlation id.
func (m *Matcher) reuseLink(ctx context.Context, link *models.FixtureLink, fx *SourceFixture) (uuid.UUID, error) {
	if fx.CorrelationID == nil {
		return link.EventID, nil
	}

	ev, err := m.events.GetByID(ctx, link.EventID)
	if err != nil {
		return uuid.Nil, err
	}
	if ev.CorrelationID != nil {
		return ev.ID, nil
	}

	err = m.events.SetCorrelationID(ctx, ev.ID, *fx.CorrelationID)
	switch {
	case err == nil:
		return ev.ID, nil
	case errors.Is(err, models.ErrDuplicate):
		// Another event already carries the id: this one is the duplicate
		// singleton. Merge it into the established event.
		target, err := m.events.GetByCorrelationID(ctx, *fx.CorrelationID)
		if err != nil {
			return uuid.Nil, err
		}
		if err := m.merge(ctx, ev.ID, target.ID); err != nil {
			return uuid.Nil, err
		}
		return target.ID, nil
	default:
		return uuid.Nil, err
	}
}

func (m *Matcher) resolveByCorrelation(ctx context.Context, bookmakerID uuid.UUID, fx *SourceFixture) (uuid.UUID, error) {
	ev, err := m.events.GetByCorrelationID(ctx, *fx.CorrelationID)
	switch {
	case err == nil:
		return ev.ID, m.createLink(ctx, ev.ID, bookmakerID, fx)
	case errors.Is(err, models.ErrNotFound):
		// fall through to creation
	default:
		return uuid.Nil, err
	}

	newEvent := &models.Event{
		SportID:       fx.SportID,
		TournamentID:  fx.TournamentID,
		HomeTeam:      fx.HomeTeam,
		AwayTeam:      fx.AwayTeam,
		KickoffTime:   fx.KickoffTime,
		CorrelationID: fx.CorrelationID,
	}
	if err := m.events.Create(ctx, newEvent); err != nil {
		// Duplicate means a concurrent task created the event; the caller
		// retries and hits the lookup path.
		return uuid.Nil, err
	}
	return newEvent.ID, m.createLink(ctx, newEvent.ID, bookmakerID, fx)
}

func (m *Matcher) resolveByTeams(ctx context.Context, bookmakerID uuid.UUID, fx *SourceFixture) (uuid.UUID, error) {
	ev, err := m.events.FindByTeamsAndKickoff(ctx, fx.HomeTeam, fx.AwayTeam, fx.KickoffTime, kickoffWindow)
	switch {
	case err == nil:
		return ev.ID, m.createLink(ctx, ev.ID, bookmakerID, fx)
	case errors.Is(err, models.ErrNotFound):
		// Orphan: reachable only through this bookmaker until a
		// correlated sighting arrives.
	default:
		return uuid.Nil, err
	}

	orphan := &models.Event{
		SportID:      fx.SportID,
		TournamentID: fx.TournamentID,
		HomeTeam:     fx.HomeTeam,
		AwayTeam:     fx.AwayTeam,
		KickoffTime:  fx.KickoffTime,
	}
	if err := m.events.Create(ctx, orphan); err != nil {
		return uuid.Nil, err
	}
	return orphan.ID, m.createLink(ctx, orphan.ID, bookmakerID, fx)
}

func (m *Matcher) createLink(ctx context.Context, eventID, bookmakerID uuid.UUID, fx *SourceFixture) error {
	return m.links.Create(ctx, &models.FixtureLink{
		EventID:         eventID,
		BookmakerID:     bookmakerID,
		ExternalEventID: fx.ExternalEventID,
		CorrelationID:   fx.CorrelationID,
	})
}

// merge folds the duplicate singleton event into the surviving one: links
// and snapshots move over, then the duplicate row goes away.
func (m *Matcher) merge(ctx context.Context, duplicateID, survivorID uuid.UUID) error {
	if err := m.links.Reassign(ctx, duplicateID, survivorID); err != nil {
		return err
	}
	if err := m.snapshots.ReassignEvent(ctx, duplicateID, survivorID); err != nil {
		return err
	}
	if err := m.events.Delete(ctx, duplicateID); err != nil {
		return err
	}

	m.logger.WithFields(logrus.Fields{
		"duplicate": duplicateID,
		"survivor":  survivorID,
	}).Info("merged singleton event")
	return nil
}

// SweepOrphans runs once at startup: any orphan event whose teams and
// kickoff match a correlated event is merged into it. Ingest-time merging
// keeps this list short; the sweep only catches leftovers from crashes
// between creation and unification.
func (m *Matcher) SweepOrphans(ctx context.Context) (int, error) {
	orphans, err := m.events.ListUncorrelated(ctx, 0)
	if err != nil {
		return 0, err
	}

	merged := 0
	for _, orphan := range orphans {
		twin, err := m.events.FindCorrelatedTwin(ctx, orphan, kickoffWindow)
		if errors.Is(err, models.ErrNotFound) {
			continue
		}
		if err != nil {
			return merged, err
		}
		if err := m.merge(ctx, orphan.ID, twin.ID); err != nil {
			return merged, err
		}
		merged++
	}
	return merged, nil
}
