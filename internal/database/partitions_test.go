package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionName(t *testing.T) {
	day := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "snapshots_p20260826", partitionName("snapshots", day))
	assert.Equal(t, "market_odds_p20260826", partitionName("market_odds", day))
}

func TestPartitionDayRoundTrip(t *testing.T) {
	day := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	got, ok := partitionDay("snapshots", partitionName("snapshots", day))
	require.True(t, ok)
	assert.Equal(t, day, got)
}

func TestPartitionDayRejectsForeignNames(t *testing.T) {
	for _, name := range []string{
		"snapshots_default",
		"snapshots_p2026",
		"market_odds_p20260826", // wrong table
		"snapshots_pXXXXXXXX",
	} {
		_, ok := partitionDay("snapshots", name)
		assert.False(t, ok, name)
	}
}
