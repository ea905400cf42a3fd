package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/markets"
)

func sportyEvent(ms ...SportyBetMarket) *SportyBetEvent {
	return &SportyBetEvent{
		EventID:       "sb-987",
		CorrelationID: "sr:match:55443322",
		HomeTeam:      "Arsenal",
		AwayTeam:      "Chelsea",
		SportName:     "Football",
		Markets:       ms,
	}
}

func TestSportyBetNormalize1X2(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(sportyEvent(SportyBetMarket{
		MarketID: "1",
		Desc:     "1X2",
		Outcomes: []SportyBetOutcome{
			{Desc: "Home", Odds: "1.85", IsActive: 1},
			{Desc: "Draw", Odds: "3.40", IsActive: 1},
			{Desc: "Away", Odds: "4.20", IsActive: 1},
		},
	}))
	require.Empty(t, errs)
	require.Len(t, mapped, 1)
	require.Equal(t, "1x2", mapped[0].CanonicalID)
	require.Equal(t, "1", mapped[0].Outcomes[0].Name)
	require.InDelta(t, 7.2753, mapped[0].Margin, 0.001)
}

func TestSportyBetNormalizeTotalSpecifier(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(sportyEvent(SportyBetMarket{
		MarketID:  "18",
		Specifier: "total=2.5",
		Outcomes: []SportyBetOutcome{
			{Desc: "Over", Odds: "1.90", IsActive: 1},
			{Desc: "Under", Odds: "1.90", IsActive: 1},
		},
	}))
	require.Empty(t, errs)
	require.Len(t, mapped, 1)
	require.NotNil(t, mapped[0].Line)
	require.Equal(t, 2.5, *mapped[0].Line)
}

func TestSportyBetNormalizeHandicapPairExpands(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(sportyEvent(SportyBetMarket{
		MarketID:  "16",
		Specifier: "hcp=-1,-1.5",
		Outcomes: []SportyBetOutcome{
			{Desc: "Home", Odds: "2.10", IsActive: 1},
			{Desc: "Away", Odds: "1.75", IsActive: 1},
		},
	}))
	require.Empty(t, errs)
	require.Len(t, mapped, 2)
	require.Equal(t, -1.0, *mapped[0].Line)
	require.Equal(t, -1.5, *mapped[1].Line)
	require.Equal(t, mapped[0].Outcomes, mapped[1].Outcomes)
}

func TestSportyBetNormalizeUnsupportedSport(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	ev := sportyEvent(SportyBetMarket{MarketID: "1"})
	ev.SportName = "Basketball"

	mapped, errs := n.Normalize(ev)
	require.Empty(t, mapped)
	require.Len(t, errs, 1)
	require.Equal(t, CodeUnsupportedSport, errs[0].Code)
}

func TestSportyBetNormalizeSuspendedOutcome(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(sportyEvent(SportyBetMarket{
		MarketID: "29",
		Outcomes: []SportyBetOutcome{
			{Desc: "Yes", Odds: "1.72", IsActive: 1},
			{Desc: "No", Odds: "2.05", IsActive: 0},
		},
	}))
	require.Empty(t, errs)
	require.Len(t, mapped, 1)
	require.True(t, mapped[0].Outcomes[0].Active)
	require.False(t, mapped[0].Outcomes[1].Active)
}

func TestSportyBetNormalizeBadOdds(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	_, errs := n.Normalize(sportyEvent(SportyBetMarket{
		MarketID: "1",
		Outcomes: []SportyBetOutcome{
			{Desc: "Home", Odds: "n/a", IsActive: 1},
			{Desc: "Draw", Odds: "3.40", IsActive: 1},
			{Desc: "Away", Odds: "4.20", IsActive: 1},
		},
	}))
	require.Len(t, errs, 1)
	require.Equal(t, CodeInvalidOddsValue, errs[0].Code)
}

func TestSportyBetNormalizeSpecifierRequired(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	_, errs := n.Normalize(sportyEvent(SportyBetMarket{
		MarketID: "18",
		Outcomes: []SportyBetOutcome{
			{Desc: "Over", Odds: "1.90", IsActive: 1},
			{Desc: "Under", Odds: "1.90", IsActive: 1},
		},
	}))
	require.Len(t, errs, 1)
	require.Equal(t, CodeInvalidSpecifier, errs[0].Code)
}

func TestSportyBetNormalizeUnknownMarketContinues(t *testing.T) {
	n := NewSportyBetNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(sportyEvent(
		SportyBetMarket{MarketID: "424242", Desc: "Exotic"},
		SportyBetMarket{
			MarketID: "1",
			Outcomes: []SportyBetOutcome{
				{Desc: "Home", Odds: "2.00", IsActive: 1},
				{Desc: "Draw", Odds: "3.00", IsActive: 1},
				{Desc: "Away", Odds: "4.00", IsActive: 1},
			},
		},
	))
	require.Len(t, mapped, 1)
	require.Len(t, errs, 1)
	require.Equal(t, CodeUnknownMarket, errs[0].Code)
}
