package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/orchestrator"
)

type stubStarter struct {
	mu   sync.Mutex
	reqs []orchestrator.Request
}

func (s *stubStarter) Start(_ context.Context, req orchestrator.Request) (*models.ScrapeRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reqs = append(s.reqs, req)
	return &models.ScrapeRun{}, nil
}

type stubMaintainer struct{}

func (stubMaintainer) Maintain(_ context.Context) error { return nil }

func newTestScheduler() *Scheduler {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewScheduler(&stubStarter{}, stubMaintainer{}, logger)
}

func TestStartWithoutJobs(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.Start())
}

func TestScheduleScrapeInvalidExpression(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.ScheduleScrape("not a cron"))
}

func TestStartAndStop(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.ScheduleScrape("*/30 * * * *"))
	require.NoError(t, s.SchedulePartitionMaintenance("0 3 * * *"))

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.False(t, s.GetNextRun().IsZero())

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
}

func TestCannotScheduleWhileRunning(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.ScheduleScrape("*/30 * * * *"))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Error(t, s.ScheduleScrape("*/15 * * * *"))
	assert.Error(t, s.SchedulePartitionMaintenance("0 4 * * *"))
}

func TestDoubleStart(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.ScheduleScrape("*/30 * * * *"))
	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Error(t, s.Start())
}
