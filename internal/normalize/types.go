package normalize

import (
	"github.com/yourusername/odds-radar/internal/models"
)

// MappedMarket is one market in canonical form, ready for the snapshot store.
// Line is present for specifier markets and completes the market identity;
// Variant carries string selectors (e.g. a multigoals bucket set).
type MappedMarket struct {
	CanonicalID         string           `json:"canonical_id"`
	ReferenceMarketID   string           `json:"reference_market_id"`
	ReferenceMarketName string           `json:"reference_market_name"`
	Line                *float64         `json:"line,omitempty"`
	Variant             *string          `json:"variant,omitempty"`
	Outcomes            []models.Outcome `json:"outcomes"`
	Margin              float64          `json:"margin"`
}

// ReferencePrice is one priced selection as the reference platform returns it.
type ReferencePrice struct {
	Name      string  `json:"name"`
	Odds      float64 `json:"price"`
	Suspended bool    `json:"suspended"`
}

// ReferenceMarket is a raw market from the reference platform's event payload.
type ReferenceMarket struct {
	MarketID   string           `json:"marketId"`
	MarketName string           `json:"marketName"`
	Specifier  string           `json:"specifier"` // plain numeric line, empty for non-specifier markets
	Prices     []ReferencePrice `json:"prices"`
}

// ReferenceEvent is the raw per-event payload from the reference platform.
type ReferenceEvent struct {
	EventID       string            `json:"eventId"`
	CorrelationID string            `json:"sportRadarId"`
	HomeTeam      string            `json:"homeTeam"`
	AwayTeam      string            `json:"awayTeam"`
	KickoffMillis int64             `json:"kickoffTime"`
	Markets       []ReferenceMarket `json:"markets"`
}

// SportyBetOutcome is one selection in a sportybet market. Odds arrive as
// strings on the wire.
type SportyBetOutcome struct {
	Desc     string `json:"desc"`
	Odds     string `json:"odds"`
	IsActive int    `json:"isActive"`
}

// SportyBetMarket is a raw sportybet market. Specifier encodes parameters as
// key=value pairs joined with '|' (e.g. "total=2.5", "hcp=-1,0").
type SportyBetMarket struct {
	MarketID  string             `json:"id"`
	Desc      string             `json:"desc"`
	Specifier string             `json:"specifier"`
	Outcomes  []SportyBetOutcome `json:"outcomes"`
}

// SportyBetEvent is the raw per-event payload from sportybet.
type SportyBetEvent struct {
	EventID       string            `json:"eventId"`
	CorrelationID string            `json:"matchId"` // sr:match:... identifier
	HomeTeam      string            `json:"homeTeamName"`
	AwayTeam      string            `json:"awayTeamName"`
	KickoffMillis int64             `json:"estimateStartTime"`
	SportName     string            `json:"sportName"`
	Markets       []SportyBetMarket `json:"markets"`
}

// Bet9jaEvent is the raw per-event payload from bet9ja: a flat odds map keyed
// by composed market keys like "S_OU@2.5_O".
type Bet9jaEvent struct {
	EventID       string             `json:"ID"`
	CorrelationID string             `json:"BetradarID"`
	HomeTeam      string             `json:"HomeTeam"`
	AwayTeam      string             `json:"AwayTeam"`
	KickoffMillis int64              `json:"StartDate"`
	Odds          map[string]float64 `json:"Odds"`
}
