// Package runs manages scrape run metadata: lifecycle, phase audit trail,
// persisted errors and the retry operation.
package runs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/repository"
)

// Service is the run metadata façade used by the orchestrator and the API.
type Service struct {
	repo   repository.RunRepository
	logger *logrus.Entry

	mu      sync.Mutex
	runLock map[uuid.UUID]*sync.Mutex
}

// NewService creates a run metadata service.
func NewService(repo repository.RunRepository, logger *logrus.Logger) *Service {
	return &Service{
		repo:    repo,
		logger:  logger.WithField("component", "runs"),
		runLock: make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockRun returns the mutex serializing updates to one run. Platform
// goroutines update the same row concurrently and the timing/status maps
// are rewritten whole, so read-modify-write must not interleave.
func (s *Service) lockRun(runID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.runLock[runID]
	if !ok {
		l = &sync.Mutex{}
		s.runLock[runID] = l
	}
	return l
}

func (s *Service) releaseRun(runID uuid.UUID) {
	s.mu.Lock()
	delete(s.runLock, runID)
	s.mu.Unlock()
}

// Open creates a run in the running state with every requested platform
// pending.
func (s *Service) Open(ctx context.Context, trigger models.RunTrigger, platforms []models.Platform) (*models.ScrapeRun, error) {
	run := &models.ScrapeRun{
		StartedAt:       time.Now().UTC(),
		Status:          models.RunRunning,
		Trigger:         trigger,
		Platforms:       platforms,
		PlatformTimings: make(map[models.Platform]models.PlatformTiming),
		PlatformStatus:  make(map[models.Platform]models.PlatformState, len(platforms)),
	}
	for _, p := range platforms {
		run.PlatformStatus[p] = models.PlatformPending
	}

	if err := s.repo.Create(ctx, run); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"run_id":    run.ID,
		"trigger":   trigger,
		"platforms": platforms,
	}).Info("opened scrape run")
	return run, nil
}

// PhaseRecord is one phase transition to persist.
type PhaseRecord struct {
	Platform        *models.Platform
	Phase           models.Phase
	EventsProcessed *int
	Message         string
	ErrorDetails    *string
}

// RecordPhase appends to the phase log and moves the run's current phase
// pointers. It must complete before the matching progress event is
// published, so late subscribers reading run state see nothing newer than
// the stream.
func (s *Service) RecordPhase(ctx context.Context, runID uuid.UUID, rec PhaseRecord) error {
	lock := s.lockRun(runID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now().UTC()
	entry := &models.ScrapePhaseLog{
		RunID:           runID,
		Platform:        rec.Platform,
		Phase:           rec.Phase,
		StartedAt:       now,
		EventsProcessed: rec.EventsProcessed,
		Message:         rec.Message,
		ErrorDetails:    rec.ErrorDetails,
	}
	if rec.Phase.IsTerminal() {
		entry.EndedAt = &now
	}
	if err := s.repo.AppendPhaseLog(ctx, entry); err != nil {
		return err
	}

	run, err := s.repo.GetByID(ctx, runID)
	if err != nil {
		return err
	}
	run.CurrentPhase = &rec.Phase
	run.CurrentPlatform = rec.Platform
	if rec.Platform != nil {
		switch rec.Phase {
		case models.PhaseCompleted:
			run.PlatformStatus[*rec.Platform] = models.PlatformCompleted
		case models.PhaseFailed:
			run.PlatformStatus[*rec.Platform] = models.PlatformFailed
		default:
			run.PlatformStatus[*rec.Platform] = models.PlatformActive
		}
	}
	return s.repo.Update(ctx, run)
}

// RecordPlatformTiming stores a finished platform's duration and event
// count.
func (s *Service) RecordPlatformTiming(ctx context.Context, runID uuid.UUID, platform models.Platform, duration time.Duration, eventsCount int) error {
	lock := s.lockRun(runID)
	lock.Lock()
	defer lock.Unlock()

	run, err := s.repo.GetByID(ctx, runID)
	if err != nil {
		return err
	}
	if run.PlatformTimings == nil {
		run.PlatformTimings = make(map[models.Platform]models.PlatformTiming)
	}
	run.PlatformTimings[platform] = models.PlatformTiming{
		DurationMS:  duration.Milliseconds(),
		EventsCount: eventsCount,
	}
	return s.repo.Update(ctx, run)
}

// Close marks the run terminal with its final status and counters.
func (s *Service) Close(ctx context.Context, runID uuid.UUID, status models.RunStatus, eventsScraped, eventsFailed int) error {
	if !status.IsTerminal() {
		return fmt.Errorf("cannot close run with non-terminal status %q", status)
	}

	lock := s.lockRun(runID)
	lock.Lock()
	defer lock.Unlock()
	defer s.releaseRun(runID)

	run, err := s.repo.GetByID(ctx, runID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	run.CompletedAt = &now
	run.Status = status
	run.EventsScraped = eventsScraped
	run.EventsFailed = eventsFailed
	run.CurrentPhase = nil
	run.CurrentPlatform = nil
	if err := s.repo.Update(ctx, run); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"run_id":   runID,
		"status":   status,
		"duration": now.Sub(run.StartedAt),
	}).Info("closed scrape run")
	return nil
}

// RecordError persists one error against the run; the message is truncated
// by the repository.
func (s *Service) RecordError(ctx context.Context, runID uuid.UUID, platform *models.Platform, errType models.ErrorType, message string) error {
	return s.repo.RecordError(ctx, &models.ScrapeError{
		RunID:      runID,
		Platform:   platform,
		ErrorType:  errType,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	})
}

// Get returns one run.
func (s *Service) Get(ctx context.Context, runID uuid.UUID) (*models.ScrapeRun, error) {
	return s.repo.GetByID(ctx, runID)
}

// List returns runs newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.ScrapeRun, error) {
	return s.repo.List(ctx, limit, offset)
}

// Stats returns the 24h dashboard aggregate.
func (s *Service) Stats(ctx context.Context) (*repository.RunStats, error) {
	return s.repo.Stats(ctx)
}

// ListErrors returns a page of a run's errors.
func (s *Service) ListErrors(ctx context.Context, runID uuid.UUID, limit, offset int) ([]*models.ScrapeError, error) {
	return s.repo.ListErrors(ctx, runID, limit, offset)
}

// ListPhaseLogs returns a run's audit trail.
func (s *Service) ListPhaseLogs(ctx context.Context, runID uuid.UUID) ([]*models.ScrapePhaseLog, error) {
	return s.repo.ListPhaseLogs(ctx, runID)
}

// Retry opens a new run restricted to a subset of a previous run's
// platforms.
func (s *Service) Retry(ctx context.Context, runID uuid.UUID, platforms []models.Platform) (*models.ScrapeRun, error) {
	original, err := s.repo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}

	requested := platforms
	if len(requested) == 0 {
		requested = original.Platforms
	}
	allowed := make(map[models.Platform]bool, len(original.Platforms))
	for _, p := range original.Platforms {
		allowed[p] = true
	}
	for _, p := range requested {
		if !allowed[p] {
			return nil, fmt.Errorf("platform %q was not part of run %s", p, runID)
		}
	}

	return s.Open(ctx, models.TriggerRetry, requested)
}
