package models

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus is the lifecycle state of a scrape run. Runs open in running and
// transition terminally to completed, partial or failed.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunCompleted RunStatus = "completed"
	RunPartial   RunStatus = "partial"
	RunFailed    RunStatus = "failed"
)

// IsTerminal reports whether the status is a final state.
func (s RunStatus) IsTerminal() bool {
	return s == RunCompleted || s == RunPartial || s == RunFailed
}

// RunTrigger records what started a run.
type RunTrigger string

const (
	TriggerScheduled RunTrigger = "scheduled"
	TriggerManual    RunTrigger = "manual"
	TriggerRetry     RunTrigger = "retry"
)

// PlatformState is the coarse per-platform progress within a run.
type PlatformState string

const (
	PlatformPending   PlatformState = "pending"
	PlatformActive    PlatformState = "active"
	PlatformCompleted PlatformState = "completed"
	PlatformFailed    PlatformState = "failed"
)

// Phase names a step of a platform's scrape pipeline.
type Phase string

const (
	PhaseDiscovering Phase = "discovering"
	PhaseScraping    Phase = "scraping"
	PhaseMapping     Phase = "mapping"
	PhaseStoring     Phase = "storing"
	PhaseCompleted   Phase = "completed"
	PhaseFailed      Phase = "failed"
)

// IsTerminal reports whether the phase ends a pipeline.
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// PlatformTiming records how long a platform's pipeline took and how many
// events it processed.
type PlatformTiming struct {
	DurationMS  int64 `json:"duration_ms"`
	EventsCount int   `json:"events_count"`
}

// ScrapeRun is the metadata record for one orchestrated scrape.
type ScrapeRun struct {
	ID              uuid.UUID                   `db:"id" json:"id"`
	StartedAt       time.Time                   `db:"started_at" json:"started_at"`
	CompletedAt     *time.Time                  `db:"completed_at" json:"completed_at,omitempty"`
	Status          RunStatus                   `db:"status" json:"status"`
	Trigger         RunTrigger                  `db:"trigger" json:"trigger"`
	Platforms       []Platform                  `db:"platforms" json:"platforms"`
	EventsScraped   int                         `db:"events_scraped" json:"events_scraped"`
	EventsFailed    int                         `db:"events_failed" json:"events_failed"`
	PlatformTimings map[Platform]PlatformTiming `db:"platform_timings" json:"platform_timings"`
	PlatformStatus  map[Platform]PlatformState  `db:"platform_status" json:"platform_status"`
	CurrentPhase    *Phase                      `db:"current_phase" json:"current_phase,omitempty"`
	CurrentPlatform *Platform                   `db:"current_platform" json:"current_platform,omitempty"`
}

// Duration returns the wall time of a finished run, or the elapsed time so
// far for one still in flight.
func (r *ScrapeRun) Duration() time.Duration {
	if r.CompletedAt != nil {
		return r.CompletedAt.Sub(r.StartedAt)
	}
	return time.Since(r.StartedAt)
}

// AggregateStatus derives the terminal run status from per-platform states:
// completed iff every platform completed, failed iff every platform failed,
// partial otherwise.
func AggregateStatus(states map[Platform]PlatformState) RunStatus {
	if len(states) == 0 {
		return RunFailed
	}
	completed, failed := 0, 0
	for _, st := range states {
		switch st {
		case PlatformCompleted:
			completed++
		case PlatformFailed:
			failed++
		}
	}
	switch {
	case completed == len(states):
		return RunCompleted
	case failed == len(states):
		return RunFailed
	default:
		return RunPartial
	}
}

// ErrorType classifies scrape errors for storage and drill-in.
type ErrorType string

const (
	ErrorTimeout   ErrorType = "timeout"
	ErrorNetwork   ErrorType = "network"
	ErrorParse     ErrorType = "parse"
	ErrorStorage   ErrorType = "storage"
	ErrorRateLimit ErrorType = "rate_limit"
	ErrorMapping   ErrorType = "mapping"
)

// MaxErrorMessageLen bounds the stored error message size.
const MaxErrorMessageLen = 1000

// ScrapeError is a persisted error row attached to a run.
type ScrapeError struct {
	ID         uuid.UUID `db:"id" json:"id"`
	RunID      uuid.UUID `db:"run_id" json:"run_id"`
	Platform   *Platform `db:"platform" json:"platform,omitempty"`
	ErrorType  ErrorType `db:"error_type" json:"error_type"`
	Message    string    `db:"message" json:"message"`
	OccurredAt time.Time `db:"occurred_at" json:"occurred_at"`
}

// TruncateMessage caps a message at MaxErrorMessageLen to bound row size.
func TruncateMessage(msg string) string {
	if len(msg) > MaxErrorMessageLen {
		return msg[:MaxErrorMessageLen]
	}
	return msg
}

// ScrapePhaseLog is one row of the append-only per-run audit trail.
type ScrapePhaseLog struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	RunID           uuid.UUID  `db:"run_id" json:"run_id"`
	Platform        *Platform  `db:"platform" json:"platform,omitempty"`
	Phase           Phase      `db:"phase" json:"phase"`
	StartedAt       time.Time  `db:"started_at" json:"started_at"`
	EndedAt         *time.Time `db:"ended_at" json:"ended_at,omitempty"`
	EventsProcessed *int       `db:"events_processed" json:"events_processed,omitempty"`
	Message         string     `db:"message" json:"message"`
	ErrorDetails    *string    `db:"error_details" json:"error_details,omitempty"`
}
