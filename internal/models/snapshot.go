package models

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is one observation of a bookmaker's odds for one event at one
// moment. Snapshots are append-only; capture times are monotonically
// non-decreasing within an (event, bookmaker) pair.
type Snapshot struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	EventID     uuid.UUID    `db:"event_id" json:"event_id"`
	BookmakerID uuid.UUID    `db:"bookmaker_id" json:"bookmaker_id"`
	CaptureTime time.Time    `db:"capture_time" json:"capture_time"`
	Markets     []MarketOdds `db:"-" json:"markets,omitempty"`
}

// MarketOdds is one market's priced outcomes inside a snapshot. Line is the
// specifier (2.5 for Over/Under 2.5, -1.5 for a handicap); for specifier
// markets it is part of the effective key, so one snapshot can hold several
// rows for the same reference market as long as the lines differ.
type MarketOdds struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	SnapshotID          uuid.UUID `db:"snapshot_id" json:"snapshot_id"`
	ReferenceMarketID   string    `db:"reference_market_id" json:"reference_market_id"`
	ReferenceMarketName string    `db:"reference_market_name" json:"reference_market_name"`
	Line                *float64  `db:"line" json:"line,omitempty"`
	Outcomes            []Outcome `db:"outcomes" json:"outcomes"`
	Margin              float64   `db:"margin" json:"margin"`
}

// Outcome is one priced selection within a market.
type Outcome struct {
	Name   string  `json:"name"`
	Odds   float64 `json:"odds"`
	Active bool    `json:"active"`
}

// Overround computes the bookmaker margin (Σ 1/odds − 1) × 100 over the
// active outcomes. Inactive outcomes are excluded from the sum.
func Overround(outcomes []Outcome) float64 {
	sum := 0.0
	for _, o := range outcomes {
		if !o.Active || o.Odds <= 0 {
			continue
		}
		sum += 1.0 / o.Odds
	}
	if sum == 0 {
		return 0
	}
	return (sum - 1.0) * 100.0
}
