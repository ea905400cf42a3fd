package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/models"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLoggerParsesLevel(t *testing.T) {
	log := NewLogger("debug", false)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewLoggerDefaultsOnBadLevel(t *testing.T) {
	log := NewLogger("verbose", false)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerJSONFormatter(t *testing.T) {
	log := NewLogger("info", true)
	_, ok := log.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}

func TestScrapeLoggerRunStarted(t *testing.T) {
	log, buf := setupTestLogger()
	sl := NewScrapeLogger(log)

	runID := uuid.New()
	sl.LogRunStarted(runID, models.TriggerManual, []models.Platform{models.PlatformReference})

	entry := parseLogOutput(t, buf)
	assert.Equal(t, runID.String(), entry["run_id"])
	assert.Equal(t, "manual", entry["trigger"])
	assert.Equal(t, "scrape_audit", entry["component"])
}

func TestScrapeLoggerRunCompleted(t *testing.T) {
	log, buf := setupTestLogger()
	sl := NewScrapeLogger(log)

	sl.LogRunCompleted(uuid.New(), models.RunPartial, 42, 3, 1500*time.Millisecond)

	entry := parseLogOutput(t, buf)
	assert.Equal(t, "partial", entry["status"])
	assert.Equal(t, float64(42), entry["events_scraped"])
	assert.Equal(t, float64(1500), entry["duration_ms"])
}

func TestScrapeLoggerSourceError(t *testing.T) {
	log, buf := setupTestLogger()
	sl := NewScrapeLogger(log)

	sl.LogSourceError(uuid.New(), models.PlatformBet9ja, models.ErrorRateLimit, "429 from upstream")

	entry := parseLogOutput(t, buf)
	assert.Equal(t, "bet9ja", entry["platform"])
	assert.Equal(t, "rate_limit", entry["error_type"])
	assert.Equal(t, "warning", entry["level"])
}
