package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSpecifierTotal(t *testing.T) {
	spec, err := ParseSpecifier("total=2.5")
	require.NoError(t, err)
	require.NotNil(t, spec.Total)
	require.Equal(t, 2.5, *spec.Total)
	require.Equal(t, []float64{2.5}, spec.Lines())
}

func TestParseSpecifierHandicapSingle(t *testing.T) {
	spec, err := ParseSpecifier("hcp=-1.5")
	require.NoError(t, err)
	require.Equal(t, []float64{-1.5}, spec.Handicap)
}

func TestParseSpecifierHandicapPairSplitsHalfLines(t *testing.T) {
	spec, err := ParseSpecifier("hcp=1,2")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, spec.Handicap)
	require.Equal(t, []float64{1, 2}, spec.Lines())
}

func TestParseSpecifierVariant(t *testing.T) {
	spec, err := ParseSpecifier("variant=sr:exact_goals:4+")
	require.NoError(t, err)
	require.NotNil(t, spec.Variant)
	require.Equal(t, "sr:exact_goals:4+", *spec.Variant)
	require.False(t, spec.HasLine())
}

func TestParseSpecifierMultipleKeys(t *testing.T) {
	spec, err := ParseSpecifier("total=3.5|variant=alt")
	require.NoError(t, err)
	require.Equal(t, 3.5, *spec.Total)
	require.Equal(t, "alt", *spec.Variant)
}

func TestParseSpecifierEmpty(t *testing.T) {
	spec, err := ParseSpecifier("")
	require.NoError(t, err)
	require.False(t, spec.HasLine())
	require.Nil(t, spec.Variant)
}

func TestParseSpecifierUnknownKeyIgnored(t *testing.T) {
	spec, err := ParseSpecifier("goalnr=1|total=0.5")
	require.NoError(t, err)
	require.Equal(t, 0.5, *spec.Total)
}

func TestParseSpecifierMalformed(t *testing.T) {
	for _, raw := range []string{"total=", "total=abc", "hcp=1,2,3", "noequals"} {
		_, err := ParseSpecifier(raw)
		require.Error(t, err, "expected %q to fail", raw)
	}
}

func TestParseSpecifierLengthGuard(t *testing.T) {
	_, err := ParseSpecifier("total=" + strings.Repeat("9", 2000))
	require.ErrorIs(t, err, errSpecifierTooLong)
}
