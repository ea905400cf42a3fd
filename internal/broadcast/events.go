// Package broadcast is the single-process pub/sub fabric for scrape progress
// and odds update notifications.
package broadcast

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/odds-radar/internal/models"
)

// Topics.
const (
	TopicScrapeProgress = "scrape_progress"
	TopicOddsUpdates    = "odds_updates"
)

// EventError is the error block carried by a progress event.
type EventError struct {
	Type        models.ErrorType `json:"type"`
	Message     string           `json:"message"`
	Recoverable bool             `json:"recoverable"`
}

// ProgressEvent is the wire shape for scrape progress. Platform is nil for
// run-level events.
type ProgressEvent struct {
	RunID       uuid.UUID        `json:"run_id"`
	Platform    *models.Platform `json:"platform,omitempty"`
	Phase       models.Phase     `json:"phase"`
	Current     int              `json:"current"`
	Total       int              `json:"total"`
	EventsCount int              `json:"events_count"`
	ElapsedMS   int64            `json:"elapsed_ms"`
	Message     string           `json:"message"`
	Error       *EventError      `json:"error,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

// OddsUpdate hints subscribers that a bookmaker has a fresh snapshot, so
// client-side caches can invalidate.
type OddsUpdate struct {
	RunID      uuid.UUID       `json:"run_id"`
	Platform   models.Platform `json:"platform"`
	EventID    uuid.UUID       `json:"event_id"`
	SnapshotID uuid.UUID       `json:"snapshot_id"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Message is what subscribers receive: the topic plus the topic's payload
// (*ProgressEvent or *OddsUpdate).
type Message struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}
