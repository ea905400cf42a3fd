package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/markets"
)

func TestBet9jaNormalizeGroupsByPrefixAndParam(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	mapped, errs := n.NormalizeBatch(map[string]float64{
		"S_OU@2.5_O": 1.90,
		"S_OU@2.5_U": 1.90,
		"S_OU@3.5_O": 2.60,
		"S_OU@3.5_U": 1.45,
	})
	require.Empty(t, errs)
	require.Len(t, mapped, 2)

	require.Equal(t, "total-goals", mapped[0].CanonicalID)
	require.Equal(t, 2.5, *mapped[0].Line)
	require.Len(t, mapped[0].Outcomes, 2)
	require.Equal(t, "Over", mapped[0].Outcomes[0].Name)
	require.Equal(t, 1.90, mapped[0].Outcomes[0].Odds)

	require.Equal(t, "total-goals", mapped[1].CanonicalID)
	require.Equal(t, 3.5, *mapped[1].Line)
	require.Len(t, mapped[1].Outcomes, 2)
	require.Equal(t, "Under", mapped[1].Outcomes[1].Name)
	require.Equal(t, 1.45, mapped[1].Outcomes[1].Odds)
}

func TestBet9jaNormalizePlainMarket(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	mapped, errs := n.NormalizeBatch(map[string]float64{
		"S_1X2_1": 1.85,
		"S_1X2_X": 3.40,
		"S_1X2_2": 4.20,
	})
	require.Empty(t, errs)
	require.Len(t, mapped, 1)
	require.Equal(t, "1x2", mapped[0].CanonicalID)
	require.Nil(t, mapped[0].Line)
	require.Equal(t, []string{"1", "X", "2"}, outcomeNames(t, mapped[0]))
	require.InDelta(t, 7.2753, mapped[0].Margin, 0.001)
}

func TestBet9jaNormalizeInvalidKeyFormat(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	mapped, errs := n.NormalizeBatch(map[string]float64{
		"garbage":    1.5,
		"S_GGNG_GG":  1.72,
		"S_GGNG_NG":  2.05,
	})
	require.Len(t, mapped, 1)
	require.Equal(t, "btts", mapped[0].CanonicalID)
	require.Len(t, errs, 1)
	require.Equal(t, CodeInvalidKeyFormat, errs[0].Code)
	require.Equal(t, "garbage", errs[0].Key)
}

func TestBet9jaNormalizeUnknownPrefix(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	_, errs := n.NormalizeBatch(map[string]float64{"S_NOPE_1": 2.0})
	require.Len(t, errs, 1)
	require.Equal(t, CodeUnknownMarket, errs[0].Code)

	_, errs = n.NormalizeBatch(map[string]float64{"S_NOPE@1.5_O": 2.0})
	require.Len(t, errs, 1)
	require.Equal(t, CodeUnknownParamMarket, errs[0].Code)
}

func TestBet9jaNormalizeUnknownSuffixFailsGroup(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	mapped, errs := n.NormalizeBatch(map[string]float64{
		"S_1X2_1":  1.85,
		"S_1X2_X":  3.40,
		"S_1X2_ZZ": 4.20,
	})
	require.Empty(t, mapped)
	require.Len(t, errs, 1)
	require.Equal(t, CodeNoMatchingOutcomes, errs[0].Code)
}

func TestBet9jaNormalizeSpecifierMarketWithoutParam(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	_, errs := n.NormalizeBatch(map[string]float64{
		"S_OU_O": 1.9,
		"S_OU_U": 1.9,
	})
	require.Len(t, errs, 1)
	require.Equal(t, CodeInvalidSpecifier, errs[0].Code)
}

func TestBet9jaNormalizeIsDeterministic(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	odds := map[string]float64{
		"S_OU@2.5_O":   1.90,
		"S_OU@2.5_U":   1.90,
		"S_1X2_1":      1.85,
		"S_1X2_X":      3.40,
		"S_1X2_2":      4.20,
		"S_GGNG_GG":    1.72,
		"S_GGNG_NG":    2.05,
		"S_CRNOU@9.5_O": 1.80,
		"S_CRNOU@9.5_U": 1.92,
	}

	first, ferrs := n.NormalizeBatch(odds)
	second, serrs := n.NormalizeBatch(odds)
	require.Equal(t, first, second)
	require.Equal(t, ferrs, serrs)
	require.Len(t, first, 4)
}

func TestBet9jaNormalizeEventWrapper(t *testing.T) {
	n := NewBet9jaNormalizer(markets.MustNewRegistry())

	mapped, errs := n.Normalize(&Bet9jaEvent{
		EventID:       "b9-1",
		CorrelationID: "55443322",
		Odds:          map[string]float64{"S_DNB_1": 1.45, "S_DNB_2": 2.75},
	})
	require.Empty(t, errs)
	require.Len(t, mapped, 1)
	require.Equal(t, "draw-no-bet", mapped[0].CanonicalID)
}

func outcomeNames(t *testing.T, m MappedMarket) []string {
	t.Helper()
	names := make([]string, len(m.Outcomes))
	for i, o := range m.Outcomes {
		names[i] = o.Name
	}
	return names
}
