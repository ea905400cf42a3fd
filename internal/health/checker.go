// Package health aggregates platform and database probe results into one
// service status.
package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/scrape"
	"github.com/yourusername/odds-radar/internal/sources"
)

const (
	cacheTTL   = 30 * time.Second
	cacheKey   = "health"
	probeLimit = 5 * time.Second
)

// Component statuses inside a report.
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// PlatformHealth is one platform's probe result.
type PlatformHealth struct {
	Platform       models.Platform `json:"platform"`
	Status         string          `json:"status"`
	ResponseTimeMS int64           `json:"response_time_ms"`
	Error          string          `json:"error,omitempty"`
}

// DatabaseHealth reports connectivity to the snapshot store.
type DatabaseHealth struct {
	Status string `json:"status"`
}

// Report is the aggregated service health document.
type Report struct {
	Status    string           `json:"status"`
	Platforms []PlatformHealth `json:"platforms"`
	Database  DatabaseHealth   `json:"database"`
	CheckedAt time.Time        `json:"checked_at"`
}

// DatabaseUp reports whether the database probe succeeded.
func (r *Report) DatabaseUp() bool {
	return r.Database.Status == StatusUp
}

// Pinger is the database liveness probe.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Checker probes all platforms plus the database and caches the result so a
// polling dashboard does not hammer the upstreams.
type Checker struct {
	srcs   []sources.Source
	db     Pinger
	cache  *cache.Cache
	logger *logrus.Entry
}

// NewChecker creates a health checker with a short result cache.
func NewChecker(srcs []sources.Source, db Pinger, logger *logrus.Logger) *Checker {
	return &Checker{
		srcs:   srcs,
		db:     db,
		cache:  cache.New(cacheTTL, 2*cacheTTL),
		logger: logger.WithField("component", "health"),
	}
}

// Check returns the current health report, probing at most once per TTL.
func (c *Checker) Check(ctx context.Context) *Report {
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(*Report)
	}

	report := c.probe(ctx)
	c.cache.Set(cacheKey, report, cache.DefaultExpiration)
	return report
}

func (c *Checker) probe(ctx context.Context) *Report {
	ctx, cancel := context.WithTimeout(ctx, probeLimit)
	defer cancel()

	report := &Report{
		Platforms: make([]PlatformHealth, 0, len(c.srcs)),
		CheckedAt: time.Now().UTC(),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, src := range c.srcs {
		src := src
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := src.CheckHealth(ctx)
			mu.Lock()
			report.Platforms = append(report.Platforms, toPlatformHealth(src.Platform(), status))
			mu.Unlock()
		}()
	}

	dbErr := c.db.HealthCheck(ctx)
	report.Database.Status = StatusUp
	if dbErr != nil {
		report.Database.Status = StatusDown
		c.logger.WithError(dbErr).Warn("database health check failed")
	}

	wg.Wait()
	sort.Slice(report.Platforms, func(i, j int) bool {
		return report.Platforms[i].Platform < report.Platforms[j].Platform
	})
	report.Status = deriveStatus(report)
	return report
}

func toPlatformHealth(platform models.Platform, status scrape.HealthStatus) PlatformHealth {
	ph := PlatformHealth{Platform: platform, Status: StatusUp, ResponseTimeMS: status.LatencyMS}
	if !status.OK {
		ph.Status = StatusDown
	}
	if status.Err != nil {
		ph.Error = status.Err.Error()
	}
	return ph
}

// deriveStatus rolls the probes up: unhealthy when the database or every
// platform is down, degraded when any platform is down, healthy otherwise.
func deriveStatus(r *Report) string {
	if !r.DatabaseUp() {
		return "unhealthy"
	}
	down := 0
	for _, ph := range r.Platforms {
		if ph.Status != StatusUp {
			down++
		}
	}
	switch {
	case len(r.Platforms) > 0 && down == len(r.Platforms):
		return "unhealthy"
	case down > 0:
		return "degraded"
	default:
		return "healthy"
	}
}
