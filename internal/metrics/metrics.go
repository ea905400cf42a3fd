// Package metrics provides the centralized Prometheus registry for the
// scrape platform.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	RunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odds_radar",
		Name:      "runs_total",
		Help:      "Total number of scrape runs by terminal status",
	}, []string{"status", "trigger"})
	EventsScrapedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odds_radar",
		Name:      "events_scraped_total",
		Help:      "Total number of events scraped and stored per platform",
	}, []string{"platform"})
	EventsFailedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odds_radar",
		Name:      "events_failed_total",
		Help:      "Total number of events that failed per platform",
	}, []string{"platform"})
	ScrapeErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odds_radar",
		Name:      "scrape_errors_total",
		Help:      "Total number of classified scrape errors",
	}, []string{"platform", "error_type"})
	SnapshotsStoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "odds_radar",
		Name:      "snapshots_stored_total",
		Help:      "Total number of odds snapshots persisted",
	})
)

// Gauge metrics
var (
	ActiveRuns = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "odds_radar",
		Name:      "active_runs",
		Help:      "Number of scrape runs currently executing",
	})
	StreamSubscribers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "odds_radar",
		Name:      "stream_subscribers",
		Help:      "Number of connected SSE and WebSocket subscribers",
	})
)

// Histogram metrics
var (
	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "odds_radar",
		Name:      "run_duration_seconds",
		Help:      "Duration of complete scrape runs in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
	})
	PlatformDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "odds_radar",
		Name:      "platform_duration_seconds",
		Help:      "Duration of one platform's pipeline in seconds",
		Buckets:   []float64{1, 5, 10, 30, 60, 120, 300},
	}, []string{"platform"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(RunsTotal)
		registry.MustRegister(EventsScrapedTotal)
		registry.MustRegister(EventsFailedTotal)
		registry.MustRegister(ScrapeErrorsTotal)
		registry.MustRegister(SnapshotsStoredTotal)

		registry.MustRegister(ActiveRuns)
		registry.MustRegister(StreamSubscribers)

		registry.MustRegister(RunDuration)
		registry.MustRegister(PlatformDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordRunCompleted records a run's terminal outcome.
func RecordRunCompleted(status, trigger string, durationSeconds float64) {
	RunsTotal.WithLabelValues(status, trigger).Inc()
	RunDuration.Observe(durationSeconds)
}

// RecordPlatformResult records one platform's pipeline outcome.
func RecordPlatformResult(platform string, scraped, failed int, durationSeconds float64) {
	EventsScrapedTotal.WithLabelValues(platform).Add(float64(scraped))
	EventsFailedTotal.WithLabelValues(platform).Add(float64(failed))
	PlatformDuration.WithLabelValues(platform).Observe(durationSeconds)
}

// RecordScrapeError records a classified scrape error.
func RecordScrapeError(platform, errorType string) {
	ScrapeErrorsTotal.WithLabelValues(platform, errorType).Inc()
}

// RecordSnapshotStored records one persisted snapshot.
func RecordSnapshotStored() {
	SnapshotsStoredTotal.Inc()
}
