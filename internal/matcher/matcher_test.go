package matcher

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/repository"
)

// In-memory fakes covering the matcher's slice of the repository surface.

type fakeEvents struct {
	byID        map[uuid.UUID]*models.Event
	failCreates int // creations to fail with ErrDuplicate before succeeding
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{byID: make(map[uuid.UUID]*models.Event)}
}

func (f *fakeEvents) Create(_ context.Context, ev *models.Event) error {
	if f.failCreates > 0 {
		f.failCreates--
		return models.ErrDuplicate
	}
	if ev.CorrelationID != nil {
		for _, existing := range f.byID {
			if existing.CorrelationID != nil && *existing.CorrelationID == *ev.CorrelationID {
				return models.ErrDuplicate
			}
		}
	}
	ev.ID = uuid.New()
	f.byID[ev.ID] = ev
	return nil
}

func (f *fakeEvents) GetByID(_ context.Context, id uuid.UUID) (*models.Event, error) {
	ev, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return ev, nil
}

func (f *fakeEvents) GetByCorrelationID(_ context.Context, correlationID string) (*models.Event, error) {
	for _, ev := range f.byID {
		if ev.CorrelationID != nil && *ev.CorrelationID == correlationID {
			return ev, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeEvents) FindByTeamsAndKickoff(_ context.Context, home, away string, kickoff time.Time, window time.Duration) (*models.Event, error) {
	for _, ev := range f.byID {
		if strings.EqualFold(ev.HomeTeam, home) && strings.EqualFold(ev.AwayTeam, away) &&
			!ev.KickoffTime.Before(kickoff.Add(-window)) && !ev.KickoffTime.After(kickoff.Add(window)) {
			return ev, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeEvents) SetCorrelationID(_ context.Context, id uuid.UUID, correlationID string) error {
	for _, ev := range f.byID {
		if ev.ID != id && ev.CorrelationID != nil && *ev.CorrelationID == correlationID {
			return models.ErrDuplicate
		}
	}
	ev, ok := f.byID[id]
	if !ok {
		return models.ErrNotFound
	}
	ev.CorrelationID = &correlationID
	return nil
}

func (f *fakeEvents) ListUncorrelated(_ context.Context, _ int) ([]*models.Event, error) {
	var out []*models.Event
	for _, ev := range f.byID {
		if ev.CorrelationID == nil {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEvents) FindCorrelatedTwin(_ context.Context, orphan *models.Event, window time.Duration) (*models.Event, error) {
	for _, ev := range f.byID {
		if ev.ID == orphan.ID || ev.CorrelationID == nil {
			continue
		}
		if strings.EqualFold(ev.HomeTeam, orphan.HomeTeam) && strings.EqualFold(ev.AwayTeam, orphan.AwayTeam) &&
			!ev.KickoffTime.Before(orphan.KickoffTime.Add(-window)) && !ev.KickoffTime.After(orphan.KickoffTime.Add(window)) {
			return ev, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeEvents) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeEvents) List(context.Context, repository.EventFilter) ([]*models.Event, int, error) {
	return nil, 0, nil
}

func (f *fakeEvents) ListUnmatched(context.Context, int, int) ([]*models.Event, error) {
	return nil, nil
}

type fakeLinks struct {
	links []*models.FixtureLink
}

func (f *fakeLinks) Create(_ context.Context, link *models.FixtureLink) error {
	for _, l := range f.links {
		if l.BookmakerID == link.BookmakerID && l.ExternalEventID == link.ExternalEventID {
			return models.ErrDuplicate
		}
	}
	link.ID = uuid.New()
	f.links = append(f.links, link)
	return nil
}

func (f *fakeLinks) GetByExternalID(_ context.Context, bookmakerID uuid.UUID, externalEventID string) (*models.FixtureLink, error) {
	for _, l := range f.links {
		if l.BookmakerID == bookmakerID && l.ExternalEventID == externalEventID {
			return l, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeLinks) ListByEvent(_ context.Context, eventID uuid.UUID) ([]*models.FixtureLink, error) {
	var out []*models.FixtureLink
	for _, l := range f.links {
		if l.EventID == eventID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLinks) Reassign(_ context.Context, fromEventID, toEventID uuid.UUID) error {
	for _, l := range f.links {
		if l.EventID == fromEventID {
			l.EventID = toEventID
		}
	}
	return nil
}

func (f *fakeLinks) CoverageStats(context.Context) (*repository.CoverageStats, error) {
	return &repository.CoverageStats{}, nil
}

type fakeSnapshots struct {
	reassigned [][2]uuid.UUID
}

func (f *fakeSnapshots) Append(context.Context, uuid.UUID, uuid.UUID, time.Time, []models.MarketOdds) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeSnapshots) Latest(context.Context, uuid.UUID, uuid.UUID) (*models.Snapshot, error) {
	return nil, models.ErrNotFound
}

func (f *fakeSnapshots) Between(context.Context, uuid.UUID, uuid.UUID, time.Time, time.Time) ([]*models.Snapshot, error) {
	return nil, nil
}

func (f *fakeSnapshots) MarketHistory(context.Context, uuid.UUID, uuid.UUID, string, *float64, time.Time, time.Time) ([]repository.MarketPoint, error) {
	return nil, nil
}

func (f *fakeSnapshots) ReassignEvent(_ context.Context, from, to uuid.UUID) error {
	f.reassigned = append(f.reassigned, [2]uuid.UUID{from, to})
	return nil
}

func (f *fakeSnapshots) DeleteByEvent(context.Context, uuid.UUID) error {
	return nil
}

func newTestMatcher() (*Matcher, *fakeEvents, *fakeLinks, *fakeSnapshots) {
	events := newFakeEvents()
	links := &fakeLinks{}
	snaps := &fakeSnapshots{}
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(events, links, snaps, logger), events, links, snaps
}

func corr(s string) *string { return &s }

func fixture(external string, correlation *string) *SourceFixture {
	return &SourceFixture{
		ExternalEventID: external,
		CorrelationID:   correlation,
		HomeTeam:        "Arsenal",
		AwayTeam:        "Chelsea",
		KickoffTime:     time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC),
		SportID:         uuid.New(),
		TournamentID:    uuid.New(),
	}
}

func TestResolveCreatesEventAndLink(t *testing.T) {
	m, events, links, _ := newTestMatcher()
	bookmaker := uuid.New()

	eventID, err := m.Resolve(context.Background(), bookmaker, fixture("bp-1", corr("sr:match:1")))
	require.NoError(t, err)
	require.Len(t, events.byID, 1)
	require.Len(t, links.links, 1)
	require.Equal(t, eventID, links.links[0].EventID)
}

func TestResolveSharedCorrelationReusesEvent(t *testing.T) {
	m, events, links, _ := newTestMatcher()
	x, y := uuid.New(), uuid.New()

	first, err := m.Resolve(context.Background(), x, fixture("bp-1", corr("sr:match:1")))
	require.NoError(t, err)
	second, err := m.Resolve(context.Background(), y, fixture("sb-9", corr("sr:match:1")))
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, events.byID, 1)
	require.Len(t, links.links, 2)
}

func TestResolveReusesExistingLink(t *testing.T) {
	m, _, links, _ := newTestMatcher()
	bookmaker := uuid.New()

	first, err := m.Resolve(context.Background(), bookmaker, fixture("bp-1", corr("sr:match:1")))
	require.NoError(t, err)
	second, err := m.Resolve(context.Background(), bookmaker, fixture("bp-1", corr("sr:match:1")))
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, links.links, 1)
}

func TestResolveNullCorrelationFuzzyMatch(t *testing.T) {
	m, events, _, _ := newTestMatcher()
	x, y := uuid.New(), uuid.New()

	first, err := m.Resolve(context.Background(), x, fixture("bp-1", corr("sr:match:1")))
	require.NoError(t, err)

	// Same fixture, 10 minutes off, no correlation id.
	fx := fixture("b9-7", nil)
	fx.KickoffTime = fx.KickoffTime.Add(10 * time.Minute)
	second, err := m.Resolve(context.Background(), y, fx)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, events.byID, 1)
}

func TestResolveNullCorrelationCreatesOrphan(t *testing.T) {
	m, events, _, _ := newTestMatcher()

	eventID, err := m.Resolve(context.Background(), uuid.New(), fixture("b9-7", nil))
	require.NoError(t, err)
	require.Nil(t, events.byID[eventID].CorrelationID)
}

func TestResolveUnifiesSingletonOnLateCorrelation(t *testing.T) {
	m, events, links, snaps := newTestMatcher()
	x, y := uuid.New(), uuid.New()

	// Y saw the fixture first without a correlation id.
	orphanID, err := m.Resolve(context.Background(), y, fixture("b9-7", nil))
	require.NoError(t, err)

	// X publishes the fixture with a correlation id at a kickoff outside
	// the fuzzy window, so a second event appears.
	fx := fixture("bp-1", corr("sr:match:1"))
	fx.KickoffTime = fx.KickoffTime.Add(2 * time.Hour)
	establishedID, err := m.Resolve(context.Background(), x, fx)
	require.NoError(t, err)
	require.NotEqual(t, orphanID, establishedID)

	// Y rescrapes its fixture, now carrying the correlation id: the
	// singleton merges into the established event.
	resolved, err := m.Resolve(context.Background(), y, fixture("b9-7", corr("sr:match:1")))
	require.NoError(t, err)
	require.Equal(t, establishedID, resolved)

	_, orphanAlive := events.byID[orphanID]
	require.False(t, orphanAlive)
	for _, l := range links.links {
		require.Equal(t, establishedID, l.EventID)
	}
	require.Equal(t, [][2]uuid.UUID{{orphanID, establishedID}}, snaps.reassigned)
}

func TestResolveLateCorrelationUpgradesOrphanInPlace(t *testing.T) {
	m, events, _, _ := newTestMatcher()
	y := uuid.New()

	orphanID, err := m.Resolve(context.Background(), y, fixture("b9-7", nil))
	require.NoError(t, err)

	// No competing event carries the id, so the orphan is upgraded.
	resolved, err := m.Resolve(context.Background(), y, fixture("b9-7", corr("sr:match:1")))
	require.NoError(t, err)
	require.Equal(t, orphanID, resolved)
	require.Equal(t, "sr:match:1", *events.byID[orphanID].CorrelationID)
}

func TestResolveRetriesOnConcurrentCreate(t *testing.T) {
	m, events, links, _ := newTestMatcher()

	// First create attempt loses the race on the correlation constraint;
	// the retry must converge instead of surfacing the violation.
	events.failCreates = 1

	eventID, err := m.Resolve(context.Background(), uuid.New(), fixture("bp-1", corr("sr:match:1")))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, eventID)
	require.Len(t, links.links, 1)
}

func TestSweepOrphansMergesTwins(t *testing.T) {
	m, events, links, _ := newTestMatcher()
	x, y := uuid.New(), uuid.New()

	orphanID, err := m.Resolve(context.Background(), y, fixture("b9-7", nil))
	require.NoError(t, err)

	fx := fixture("bp-1", corr("sr:match:1"))
	fx.KickoffTime = fx.KickoffTime.Add(2 * time.Hour)
	establishedID, err := m.Resolve(context.Background(), x, fx)
	require.NoError(t, err)

	// Bring the kickoffs within the window so the sweep can pair them.
	events.byID[establishedID].KickoffTime = events.byID[orphanID].KickoffTime.Add(5 * time.Minute)

	merged, err := m.SweepOrphans(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, merged)
	require.Len(t, events.byID, 1)
	for _, l := range links.links {
		require.Equal(t, establishedID, l.EventID)
	}
}
