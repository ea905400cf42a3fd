package metrics

import (
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	InitRegistry()
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
}

func TestRecordRunCompleted(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordRunCompleted("completed", "manual", 12.5)
		RecordRunCompleted("partial", "scheduled", 31.0)
	})
}

func TestRecordPlatformResult(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordPlatformResult("sportybet", 40, 2, 8.2)
	})
}

func TestRecordScrapeError(t *testing.T) {
	InitRegistry()

	assert.NotPanics(t, func() {
		RecordScrapeError("bet9ja", "rate_limit")
	})
}

func TestHandler(t *testing.T) {
	InitRegistry()
	handler := Handler()

	assert.NotNil(t, handler)
	assert.Implements(t, (*http.Handler)(nil), handler)
}
