package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/markets"
)

func refEvent(ms ...ReferenceMarket) *ReferenceEvent {
	return &ReferenceEvent{
		EventID:       "bp-123",
		CorrelationID: "sr:match:55443322",
		HomeTeam:      "Arsenal",
		AwayTeam:      "Chelsea",
		Markets:       ms,
	}
}

func TestReferenceNormalize1X2Margin(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(refEvent(ReferenceMarket{
		MarketID:   "3743",
		MarketName: "1X2",
		Prices: []ReferencePrice{
			{Name: "1", Odds: 1.85},
			{Name: "X", Odds: 3.40},
			{Name: "2", Odds: 4.20},
		},
	}))
	require.Empty(t, errs)
	require.Len(t, mapped, 1)

	m := mapped[0]
	require.Equal(t, "1x2", m.CanonicalID)
	require.Equal(t, "3743", m.ReferenceMarketID)
	require.Nil(t, m.Line)
	require.Len(t, m.Outcomes, 3)
	require.InDelta(t, 7.2753, m.Margin, 0.001)
}

func TestReferenceNormalizeSpecifierMarket(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(refEvent(ReferenceMarket{
		MarketID:  "3962",
		Specifier: "2.5",
		Prices: []ReferencePrice{
			{Name: "Over", Odds: 1.90},
			{Name: "Under", Odds: 1.90},
		},
	}))
	require.Empty(t, errs)
	require.Len(t, mapped, 1)
	require.Equal(t, "total-goals", mapped[0].CanonicalID)
	require.NotNil(t, mapped[0].Line)
	require.Equal(t, 2.5, *mapped[0].Line)
}

func TestReferenceNormalizePartialSuccess(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(refEvent(
		ReferenceMarket{
			MarketID: "3743",
			Prices: []ReferencePrice{
				{Name: "1", Odds: 2.0}, {Name: "X", Odds: 3.0}, {Name: "2", Odds: 4.0},
			},
		},
		ReferenceMarket{MarketID: "999999", Prices: []ReferencePrice{{Name: "1", Odds: 2.0}}},
	))
	require.Len(t, mapped, 1)
	require.Len(t, errs, 1)
	require.Equal(t, CodeUnknownMarket, errs[0].Code)
	require.Equal(t, "999999", errs[0].Key)
}

func TestReferenceNormalizeUnknownParamMarket(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())

	_, errs := n.Normalize(refEvent(ReferenceMarket{
		MarketID:  "888888",
		Specifier: "1.5",
		Prices:    []ReferencePrice{{Name: "Over", Odds: 1.5}},
	}))
	require.Len(t, errs, 1)
	require.Equal(t, CodeUnknownParamMarket, errs[0].Code)
}

func TestReferenceNormalizeSpecifierMismatch(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())

	// Specifier on a non-specifier market.
	_, errs := n.Normalize(refEvent(ReferenceMarket{
		MarketID:  "3743",
		Specifier: "2.5",
		Prices:    []ReferencePrice{{Name: "1", Odds: 2.0}},
	}))
	require.Len(t, errs, 1)
	require.Equal(t, CodeInvalidSpecifier, errs[0].Code)

	// Specifier market without a line.
	_, errs = n.Normalize(refEvent(ReferenceMarket{
		MarketID: "3962",
		Prices:   []ReferencePrice{{Name: "Over", Odds: 1.9}, {Name: "Under", Odds: 1.9}},
	}))
	require.Len(t, errs, 1)
	require.Equal(t, CodeInvalidSpecifier, errs[0].Code)
}

func TestReferenceNormalizeSuspendedExcludedFromMargin(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(refEvent(ReferenceMarket{
		MarketID: "3743",
		Prices: []ReferencePrice{
			{Name: "1", Odds: 2.0},
			{Name: "X", Odds: 2.0, Suspended: true},
			{Name: "2", Odds: 2.0},
		},
	}))
	require.Empty(t, errs)
	require.Len(t, mapped, 1)
	require.False(t, mapped[0].Outcomes[1].Active)
	// Only the two active selections count: 1/2 + 1/2 - 1 = 0.
	require.InDelta(t, 0.0, mapped[0].Margin, 1e-9)
}

func TestReferenceNormalizeRejectsNonPositiveOdds(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())

	_, errs := n.Normalize(refEvent(ReferenceMarket{
		MarketID: "3743",
		Prices: []ReferencePrice{
			{Name: "1", Odds: 0}, {Name: "X", Odds: 3.0}, {Name: "2", Odds: 4.0},
		},
	}))
	require.Len(t, errs, 1)
	require.Equal(t, CodeInvalidOddsValue, errs[0].Code)
}

func TestReferenceNormalizeIsDeterministic(t *testing.T) {
	n := NewReferenceNormalizer(markets.MustNewRegistry())
	ev := refEvent(
		ReferenceMarket{
			MarketID: "3795",
			Prices:   []ReferencePrice{{Name: "Yes", Odds: 1.72}, {Name: "No", Odds: 2.05}},
		},
		ReferenceMarket{
			MarketID:  "3962",
			Specifier: "1.5",
			Prices:    []ReferencePrice{{Name: "Over", Odds: 1.28}, {Name: "Under", Odds: 3.60}},
		},
	)

	first, ferrs := n.Normalize(ev)
	second, serrs := n.Normalize(ev)
	require.Equal(t, first, second)
	require.Equal(t, ferrs, serrs)
}
