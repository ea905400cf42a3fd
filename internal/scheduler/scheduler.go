// Package scheduler runs the periodic jobs: scheduled scrape runs and
// partition maintenance.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/orchestrator"
)

// RunStarter launches scrape runs; the orchestrator implements it.
type RunStarter interface {
	Start(ctx context.Context, req orchestrator.Request) (*models.ScrapeRun, error)
}

// PartitionMaintainer provisions upcoming partitions and drops expired ones.
type PartitionMaintainer interface {
	Maintain(ctx context.Context) error
}

// Scheduler manages the cron jobs. Schedule everything before Start.
type Scheduler struct {
	cron       *cron.Cron
	starter    RunStarter
	partitions PartitionMaintainer
	logger     *logrus.Entry

	mu        sync.RWMutex
	isRunning bool
	jobIDs    []cron.EntryID
}

// NewScheduler creates a new scheduler
func NewScheduler(starter RunStarter, partitions PartitionMaintainer, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		starter:    starter,
		partitions: partitions,
		logger:     logger.WithField("component", "scheduler"),
		jobIDs:     make([]cron.EntryID, 0),
	}
}

// ScheduleScrape schedules recurring scrape runs across every platform.
func (s *Scheduler) ScheduleScrape(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		run, err := s.starter.Start(context.Background(), orchestrator.Request{
			Trigger: models.TriggerScheduled,
		})
		if err != nil {
			s.logger.WithError(err).Error("scheduled scrape failed to start")
			return
		}
		s.logger.WithField("run_id", run.ID).Info("scheduled scrape started")
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("scheduled recurring scrape")

	return nil
}

// SchedulePartitionMaintenance schedules daily partition provisioning and
// retention cleanup.
func (s *Scheduler) SchedulePartitionMaintenance(cronExpression string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.partitions.Maintain(ctx); err != nil {
			s.logger.WithError(err).Error("partition maintenance failed")
			return
		}
		s.logger.Info("partition maintenance completed")
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("scheduled partition maintenance")

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("scheduler started")

	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	<-s.cron.Stop().Done()
	s.isRunning = false
	s.logger.Info("scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			if nextRun.IsZero() || entry.Next.Before(nextRun) {
				nextRun = entry.Next
			}
		}
	}

	return nextRun
}
