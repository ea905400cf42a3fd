package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/models"
)

// These tests run against a live database; SetupTestDB skips them unless
// TEST_DATABASE_URL is set. Apply migrations with the migrate CLI first.

func setupRepos(t *testing.T) (*Repositories, *database.DB) {
	t.Helper()
	db := database.SetupTestDB(t)
	repos, err := NewRepositories(db)
	require.NoError(t, err)
	return repos, db
}

func seedCatalog(t *testing.T, ctx context.Context, repos *Repositories) (*models.Sport, *models.Tournament) {
	t.Helper()
	sport, err := repos.Catalog.EnsureSport(ctx, "Football")
	require.NoError(t, err)
	tournament, err := repos.Catalog.EnsureTournament(ctx, sport.ID, "Premier League", nil)
	require.NoError(t, err)
	return sport, tournament
}

func TestEventRepositoryRoundTrip(t *testing.T) {
	repos, db := setupRepos(t)
	defer database.TeardownTestDB(t, db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sport, tournament := seedCatalog(t, ctx, repos)

	correlation := "sr:match:" + uuid.NewString()
	ev := &models.Event{
		ID:            uuid.New(),
		SportID:       sport.ID,
		TournamentID:  tournament.ID,
		HomeTeam:      "Arsenal",
		AwayTeam:      "Chelsea",
		KickoffTime:   time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second),
		CorrelationID: &correlation,
	}
	require.NoError(t, repos.Event.Create(ctx, ev))
	defer repos.Event.Delete(ctx, ev.ID)

	byID, err := repos.Event.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev.HomeTeam, byID.HomeTeam)

	byCorrelation, err := repos.Event.GetByCorrelationID(ctx, correlation)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, byCorrelation.ID)

	_, err = repos.Event.GetByCorrelationID(ctx, "sr:match:"+uuid.NewString())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestEventRepositoryDuplicateCorrelation(t *testing.T) {
	repos, db := setupRepos(t)
	defer database.TeardownTestDB(t, db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sport, tournament := seedCatalog(t, ctx, repos)
	correlation := "sr:match:" + uuid.NewString()

	first := &models.Event{
		ID:            uuid.New(),
		SportID:       sport.ID,
		TournamentID:  tournament.ID,
		HomeTeam:      "Liverpool",
		AwayTeam:      "Everton",
		KickoffTime:   time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second),
		CorrelationID: &correlation,
	}
	require.NoError(t, repos.Event.Create(ctx, first))
	defer repos.Event.Delete(ctx, first.ID)

	orphan := &models.Event{
		ID:           uuid.New(),
		SportID:      sport.ID,
		TournamentID: tournament.ID,
		HomeTeam:     "Liverpool",
		AwayTeam:     "Everton",
		KickoffTime:  first.KickoffTime,
	}
	require.NoError(t, repos.Event.Create(ctx, orphan))
	defer repos.Event.Delete(ctx, orphan.ID)

	err := repos.Event.SetCorrelationID(ctx, orphan.ID, correlation)
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestSnapshotRepositoryAppendAndHistory(t *testing.T) {
	repos, db := setupRepos(t)
	defer database.TeardownTestDB(t, db)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	sport, tournament := seedCatalog(t, ctx, repos)
	bookie, err := repos.Bookmaker.EnsureExists(ctx, "betpawa", "Betpawa", models.RoleReference)
	require.NoError(t, err)

	ev := &models.Event{
		ID:           uuid.New(),
		SportID:      sport.ID,
		TournamentID: tournament.ID,
		HomeTeam:     "Spurs",
		AwayTeam:     "West Ham",
		KickoffTime:  time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second),
	}
	require.NoError(t, repos.Event.Create(ctx, ev))
	defer func() {
		repos.Snapshot.DeleteByEvent(ctx, ev.ID)
		repos.Event.Delete(ctx, ev.ID)
	}()

	markets := []models.MarketOdds{
		{
			ReferenceMarketID:   "3743",
			ReferenceMarketName: "1X2",
			Outcomes: []models.Outcome{
				{Name: "1", Odds: 1.85, Active: true},
				{Name: "X", Odds: 3.40, Active: true},
				{Name: "2", Odds: 4.20, Active: true},
			},
			Margin: models.Overround([]models.Outcome{
				{Name: "1", Odds: 1.85, Active: true},
				{Name: "X", Odds: 3.40, Active: true},
				{Name: "2", Odds: 4.20, Active: true},
			}),
		},
	}

	first := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	second := first.Add(30 * time.Minute)
	_, err = repos.Snapshot.Append(ctx, ev.ID, bookie.ID, first, markets)
	require.NoError(t, err)
	_, err = repos.Snapshot.Append(ctx, ev.ID, bookie.ID, second, markets)
	require.NoError(t, err)

	latest, err := repos.Snapshot.Latest(ctx, ev.ID, bookie.ID)
	require.NoError(t, err)
	assert.Equal(t, second, latest.CaptureTime.UTC())
	require.Len(t, latest.Markets, 1)
	assert.Equal(t, "3743", latest.Markets[0].ReferenceMarketID)

	history, err := repos.Snapshot.MarketHistory(ctx, ev.ID, bookie.ID, "3743", nil, first.Add(-time.Minute), second.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].CaptureTime.Before(history[1].CaptureTime))
}

func TestFixtureLinkCoverage(t *testing.T) {
	repos, db := setupRepos(t)
	defer database.TeardownTestDB(t, db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := repos.FixtureLink.CoverageStats(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalEvents, stats.MatchedEvents)
}
