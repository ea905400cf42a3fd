package models

import (
	"time"

	"github.com/google/uuid"
)

// Sport is the top level of the sport -> tournament -> event hierarchy.
type Sport struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Tournament groups events under a sport (e.g. "Premier League").
type Tournament struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SportID   uuid.UUID `db:"sport_id" json:"sport_id"`
	Name      string    `db:"name" json:"name" validate:"required"`
	Country   *string   `db:"country" json:"country,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Event is a single fixture. CorrelationID is the third-party (SportRadar)
// identifier that names the same real-world fixture across sources; it is
// unique when present but nullable. An event without one is unmatchable and
// only ever appears in a single source's view.
type Event struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	SportID       uuid.UUID  `db:"sport_id" json:"sport_id"`
	TournamentID  uuid.UUID  `db:"tournament_id" json:"tournament_id"`
	HomeTeam      string     `db:"home_team" json:"home_team" validate:"required"`
	AwayTeam      string     `db:"away_team" json:"away_team" validate:"required"`
	KickoffTime   time.Time  `db:"kickoff_time" json:"kickoff_time" validate:"required"`
	CorrelationID *string    `db:"correlation_id" json:"correlation_id,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// HasStarted reports whether the fixture kickoff is in the past.
func (e *Event) HasStarted(now time.Time) bool {
	return !e.KickoffTime.After(now)
}

// Bookmaker is one odds source. Exactly one bookmaker carries the reference
// role per deployment.
type Bookmaker struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	Slug        string        `db:"slug" json:"slug" validate:"required"`
	DisplayName string        `db:"display_name" json:"display_name" validate:"required"`
	Role        BookmakerRole `db:"role" json:"role" validate:"required,oneof=reference competitor"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
}

// FixtureLink ties a bookmaker's external event id to a canonical Event.
// Several links point at one event, one per bookmaker covering the fixture.
// A link may be created before its event row exists on other bookmakers;
// the matcher resolves the correlation lazily.
type FixtureLink struct {
	ID              uuid.UUID `db:"id" json:"id"`
	EventID         uuid.UUID `db:"event_id" json:"event_id"`
	BookmakerID     uuid.UUID `db:"bookmaker_id" json:"bookmaker_id"`
	ExternalEventID string    `db:"external_event_id" json:"external_event_id" validate:"required"`
	CorrelationID   *string   `db:"correlation_id" json:"correlation_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
