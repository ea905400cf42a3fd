// Package logger provides scrape audit logging.
package logger

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
)

// ScrapeLogger provides a dedicated audit trail for scrape runs.
type ScrapeLogger struct {
	*logrus.Entry
}

// NewScrapeLogger creates a new scrape audit logger.
func NewScrapeLogger(baseLogger *logrus.Logger) *ScrapeLogger {
	return &ScrapeLogger{
		Entry: baseLogger.WithField("component", "scrape_audit"),
	}
}

// LogRunStarted logs the opening of a scrape run.
func (sl *ScrapeLogger) LogRunStarted(runID uuid.UUID, trigger models.RunTrigger, platforms []models.Platform) {
	sl.WithFields(logrus.Fields{
		"run_id":    runID,
		"trigger":   trigger,
		"platforms": platforms,
	}).Info("Scrape run started")
}

// LogRunCompleted logs a run's terminal outcome.
func (sl *ScrapeLogger) LogRunCompleted(runID uuid.UUID, status models.RunStatus, eventsScraped, eventsFailed int, duration time.Duration) {
	sl.WithFields(logrus.Fields{
		"run_id":         runID,
		"status":         status,
		"events_scraped": eventsScraped,
		"events_failed":  eventsFailed,
		"duration_ms":    duration.Milliseconds(),
	}).Info("Scrape run completed")
}

// LogPlatformPhase logs one platform's phase transition.
func (sl *ScrapeLogger) LogPlatformPhase(runID uuid.UUID, platform models.Platform, phase models.Phase, eventsProcessed int) {
	sl.WithFields(logrus.Fields{
		"run_id":           runID,
		"platform":         platform,
		"phase":            phase,
		"events_processed": eventsProcessed,
	}).Info("Platform phase transition")
}

// LogSourceError logs a classified source failure.
func (sl *ScrapeLogger) LogSourceError(runID uuid.UUID, platform models.Platform, errType models.ErrorType, message string) {
	sl.WithFields(logrus.Fields{
		"run_id":     runID,
		"platform":   platform,
		"error_type": errType,
		"message":    message,
	}).Warn("Source error recorded")
}
