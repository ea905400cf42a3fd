// Package orchestrator drives scrape runs end to end: platform fan-out,
// phase transitions, progress publication and result aggregation.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/odds-radar/internal/broadcast"
	"github.com/yourusername/odds-radar/internal/matcher"
	"github.com/yourusername/odds-radar/internal/metrics"
	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/repository"
	"github.com/yourusername/odds-radar/internal/runs"
	"github.com/yourusername/odds-radar/internal/scrape"
	"github.com/yourusername/odds-radar/internal/sources"
)

// Timeout bounds for one run.
const (
	MinTimeout     = 5 * time.Second
	MaxTimeout     = 300 * time.Second
	DefaultTimeout = 30 * time.Second
)

// replayEvictAfter is how long a finished run's replay entries stay in the
// broadcast cache. Late subscribers still see the terminal event within
// this window; after it the entries are dropped so the cache stays bounded.
var replayEvictAfter = 5 * time.Minute

// Request describes one scrape run to execute.
type Request struct {
	Platforms    []models.Platform
	SportID      string
	TournamentID string
	Timeout      time.Duration
	Trigger      models.RunTrigger
}

// bookmakerDisplayNames maps platforms to their catalogue display names.
var bookmakerDisplayNames = map[models.Platform]string{
	models.PlatformReference: "Betpawa",
	models.PlatformSportyBet: "SportyBet",
	models.PlatformBet9ja:    "Bet9ja",
}

// Orchestrator owns the scrape pipeline dependencies. One instance serves
// the whole process; concurrent runs are safe.
type Orchestrator struct {
	sources   map[models.Platform]sources.Source
	matcher   *matcher.Matcher
	snapshots repository.SnapshotRepository
	bookies   repository.BookmakerRepository
	catalog   repository.CatalogRepository
	runs      *runs.Service
	bus       *broadcast.Broadcaster
	logger    *logrus.Entry
}

// New wires an orchestrator from its collaborators.
func New(
	srcs []sources.Source,
	m *matcher.Matcher,
	snapshots repository.SnapshotRepository,
	bookies repository.BookmakerRepository,
	catalog repository.CatalogRepository,
	runSvc *runs.Service,
	bus *broadcast.Broadcaster,
	logger *logrus.Logger,
) *Orchestrator {
	byPlatform := make(map[models.Platform]sources.Source, len(srcs))
	for _, s := range srcs {
		byPlatform[s.Platform()] = s
	}
	return &Orchestrator{
		sources:   byPlatform,
		matcher:   m,
		snapshots: snapshots,
		bookies:   bookies,
		catalog:   catalog,
		runs:      runSvc,
		bus:       bus,
		logger:    logger.WithField("component", "orchestrator"),
	}
}

// Start opens a run and executes it in the background, returning the run
// record immediately. The run detaches from the caller's context; only its
// own deadline cancels it.
func (o *Orchestrator) Start(ctx context.Context, req Request) (*models.ScrapeRun, error) {
	run, err := o.prepare(ctx, &req)
	if err != nil {
		return nil, err
	}

	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), req.Timeout)
		defer cancel()
		o.execute(runCtx, run, req)
	}()

	return run, nil
}

// Execute runs synchronously and returns the terminal run record; the CLI
// mode uses this.
func (o *Orchestrator) Execute(ctx context.Context, req Request) (*models.ScrapeRun, error) {
	run, err := o.prepare(ctx, &req)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()
	o.execute(runCtx, run, req)

	return o.runs.Get(ctx, run.ID)
}

// prepare validates the request, registers bookmakers and opens the run row.
func (o *Orchestrator) prepare(ctx context.Context, req *Request) (*models.ScrapeRun, error) {
	if len(req.Platforms) == 0 {
		req.Platforms = models.AllPlatforms
	}
	for _, p := range req.Platforms {
		if _, ok := o.sources[p]; !ok {
			return nil, fmt.Errorf("no source configured for platform %q", p)
		}
	}

	switch {
	case req.Timeout == 0:
		req.Timeout = DefaultTimeout
	case req.Timeout < MinTimeout:
		req.Timeout = MinTimeout
	case req.Timeout > MaxTimeout:
		req.Timeout = MaxTimeout
	}
	if req.Trigger == "" {
		req.Trigger = models.TriggerManual
	}

	// Bookmaker auto-registration: first use creates the row.
	for _, p := range req.Platforms {
		if _, err := o.bookies.EnsureExists(ctx, p.BookmakerSlug(), bookmakerDisplayNames[p], p.Role()); err != nil {
			return nil, err
		}
	}

	return o.runs.Open(ctx, req.Trigger, req.Platforms)
}

// execute fans out one goroutine per platform and aggregates their results
// into the terminal run status. A platform failure never cancels siblings.
func (o *Orchestrator) execute(ctx context.Context, run *models.ScrapeRun, req Request) {
	start := time.Now()
	metrics.ActiveRuns.Inc()
	defer metrics.ActiveRuns.Dec()

	var (
		mu        sync.Mutex
		states    = make(map[models.Platform]models.PlatformState, len(req.Platforms))
		totalOK   int
		totalFail int
	)

	g := new(errgroup.Group)
	for _, platform := range req.Platforms {
		platform := platform
		g.Go(func() error {
			ok, failed, err := o.runPlatform(ctx, run.ID, platform, req, start)

			mu.Lock()
			defer mu.Unlock()
			totalOK += ok
			totalFail += failed
			if err != nil {
				states[platform] = models.PlatformFailed
			} else {
				states[platform] = models.PlatformCompleted
			}
			return nil
		})
	}
	_ = g.Wait()

	status := models.AggregateStatus(states)
	metrics.RecordRunCompleted(string(status), string(req.Trigger), time.Since(start).Seconds())
	if err := o.runs.Close(context.Background(), run.ID, status, totalOK, totalFail); err != nil {
		o.logger.WithError(err).WithField("run_id", run.ID).Error("failed to close run")
	}

	phase := models.PhaseCompleted
	if status == models.RunFailed {
		phase = models.PhaseFailed
	}
	o.bus.PublishProgress(&broadcast.ProgressEvent{
		RunID:       run.ID,
		Phase:       phase,
		EventsCount: totalOK,
		ElapsedMS:   time.Since(start).Milliseconds(),
		Message:     fmt.Sprintf("run %s", status),
		Timestamp:   time.Now().UTC(),
	})

	time.AfterFunc(replayEvictAfter, func() {
		o.bus.DropRun(run.ID)
	})
}

// runPlatform drives one platform pipeline: discover, fetch, map, store.
func (o *Orchestrator) runPlatform(ctx context.Context, runID uuid.UUID, platform models.Platform, req Request, runStart time.Time) (eventsOK, eventsFailed int, err error) {
	platformStart := time.Now()
	log := o.logger.WithFields(logrus.Fields{"run_id": runID, "platform": platform})

	defer func() {
		metrics.RecordPlatformResult(string(platform), eventsOK, eventsFailed, time.Since(platformStart).Seconds())
		timing := o.runs.RecordPlatformTiming(context.Background(), runID, platform, time.Since(platformStart), eventsOK)
		if timing != nil {
			log.WithError(timing).Error("failed to record platform timing")
		}
	}()

	src := o.sources[platform]

	o.emit(ctx, runID, &platform, models.PhaseDiscovering, 0, 0, 0, runStart, "listing upcoming events", nil)

	ids, err := src.Discover(ctx, sources.Scope{SportID: req.SportID, TournamentID: req.TournamentID})
	if err != nil {
		o.failPlatform(runID, platform, runStart, err)
		return 0, 0, err
	}

	o.emit(ctx, runID, &platform, models.PhaseScraping, 0, len(ids), 0, runStart,
		fmt.Sprintf("fetching %d events", len(ids)), nil)

	fetched, fetchErrs := src.Fetch(ctx, ids)
	for _, ferr := range fetchErrs {
		eventsFailed++
		o.recordSourceError(runID, platform, ferr)
	}
	if ctx.Err() != nil {
		err = fmt.Errorf("platform %s: %w", platform, ctx.Err())
		o.failPlatform(runID, platform, runStart, err)
		return eventsOK, eventsFailed, err
	}

	o.emit(ctx, runID, &platform, models.PhaseMapping, 0, len(fetched), len(fetched), runStart,
		"normalizing markets", nil)

	type storable struct {
		event   sources.FetchedEvent
		markets []models.MarketOdds
	}
	batch := make([]storable, 0, len(fetched))
	for _, ev := range fetched {
		mapped, mapErrs := ev.Normalize()
		for _, merr := range mapErrs {
			o.recordMappingError(runID, platform, merr.Error())
		}

		markets := make([]models.MarketOdds, 0, len(mapped))
		for _, m := range mapped {
			markets = append(markets, models.MarketOdds{
				ReferenceMarketID:   m.ReferenceMarketID,
				ReferenceMarketName: m.ReferenceMarketName,
				Line:                m.Line,
				Outcomes:            m.Outcomes,
				Margin:              m.Margin,
			})
		}
		batch = append(batch, storable{event: ev, markets: markets})
	}

	o.emit(ctx, runID, &platform, models.PhaseStoring, 0, len(batch), eventsOK, runStart,
		"persisting snapshots", nil)

	bookmaker, err := o.bookies.GetBySlug(ctx, platform.BookmakerSlug())
	if err != nil {
		o.failPlatform(runID, platform, runStart, err)
		return eventsOK, eventsFailed, err
	}

	for i, item := range batch {
		if ctx.Err() != nil {
			err = fmt.Errorf("platform %s: %w", platform, ctx.Err())
			o.failPlatform(runID, platform, runStart, err)
			return eventsOK, eventsFailed, err
		}

		if serr := o.store(ctx, runID, bookmaker, platform, item.event, item.markets); serr != nil {
			eventsFailed++
			o.recordStorageError(runID, platform, serr)
			continue
		}
		eventsOK++

		if (i+1)%10 == 0 || i+1 == len(batch) {
			o.emit(ctx, runID, &platform, models.PhaseStoring, i+1, len(batch), eventsOK, runStart,
				"persisting snapshots", nil)
		}
	}

	o.emit(ctx, runID, &platform, models.PhaseCompleted, len(batch), len(batch), eventsOK, runStart,
		fmt.Sprintf("platform done: %d stored, %d failed", eventsOK, eventsFailed), nil)
	log.WithFields(logrus.Fields{"stored": eventsOK, "failed": eventsFailed}).Info("platform pipeline finished")
	return eventsOK, eventsFailed, nil
}

// store resolves the fixture to a canonical event and appends one snapshot.
func (o *Orchestrator) store(ctx context.Context, runID uuid.UUID, bookmaker *models.Bookmaker, platform models.Platform, ev sources.FetchedEvent, markets []models.MarketOdds) error {
	sportName := ev.SportName
	if sportName == "" {
		sportName = "Football"
	}
	sport, err := o.catalog.EnsureSport(ctx, sportName)
	if err != nil {
		return err
	}

	tournamentName := ev.TournamentName
	if tournamentName == "" {
		tournamentName = "Unknown"
	}
	tournament, err := o.catalog.EnsureTournament(ctx, sport.ID, tournamentName, nil)
	if err != nil {
		return err
	}

	eventID, err := o.matcher.Resolve(ctx, bookmaker.ID, &matcher.SourceFixture{
		ExternalEventID: ev.ExternalEventID,
		CorrelationID:   ev.CorrelationID,
		HomeTeam:        ev.HomeTeam,
		AwayTeam:        ev.AwayTeam,
		KickoffTime:     ev.KickoffTime,
		SportID:         sport.ID,
		TournamentID:    tournament.ID,
	})
	if err != nil {
		return err
	}

	snapshotID, err := o.snapshots.Append(ctx, eventID, bookmaker.ID, time.Now().UTC(), markets)
	if err != nil {
		return err
	}

	metrics.RecordSnapshotStored()
	o.bus.PublishOddsUpdate(&broadcast.OddsUpdate{
		RunID:      runID,
		Platform:   platform,
		EventID:    eventID,
		SnapshotID: snapshotID,
		Timestamp:  time.Now().UTC(),
	})
	return nil
}

// emit records the phase transition before publishing it, so run state read
// by a late subscriber is never behind the stream.
func (o *Orchestrator) emit(ctx context.Context, runID uuid.UUID, platform *models.Platform, phase models.Phase, current, total, eventsCount int, runStart time.Time, message string, evErr *broadcast.EventError) {
	rec := runs.PhaseRecord{Platform: platform, Phase: phase, Message: message}
	if total > 0 {
		processed := current
		rec.EventsProcessed = &processed
	}
	if evErr != nil {
		details := evErr.Message
		rec.ErrorDetails = &details
	}
	if err := o.runs.RecordPhase(ctx, runID, rec); err != nil {
		o.logger.WithError(err).WithField("run_id", runID).Error("failed to record phase")
	}

	o.bus.PublishProgress(&broadcast.ProgressEvent{
		RunID:       runID,
		Platform:    platform,
		Phase:       phase,
		Current:     current,
		Total:       total,
		EventsCount: eventsCount,
		ElapsedMS:   time.Since(runStart).Milliseconds(),
		Message:     message,
		Error:       evErr,
		Timestamp:   time.Now().UTC(),
	})
}

// failPlatform records the terminal failed phase with its error block. The
// phase record still has to land when the run context is already dead, so
// it uses a detached context.
func (o *Orchestrator) failPlatform(runID uuid.UUID, platform models.Platform, runStart time.Time, cause error) {
	errType := classify(cause)
	o.recordError(runID, &platform, errType, cause.Error())

	o.emit(context.Background(), runID, &platform, models.PhaseFailed, 0, 0, 0, runStart,
		"platform failed", &broadcast.EventError{
			Type:        errType,
			Message:     models.TruncateMessage(cause.Error()),
			Recoverable: errType == models.ErrorNetwork || errType == models.ErrorRateLimit,
		})
}

func (o *Orchestrator) recordSourceError(runID uuid.UUID, platform models.Platform, err error) {
	o.recordError(runID, &platform, classify(err), err.Error())
}

func (o *Orchestrator) recordMappingError(runID uuid.UUID, platform models.Platform, message string) {
	o.recordError(runID, &platform, models.ErrorMapping, message)
}

func (o *Orchestrator) recordStorageError(runID uuid.UUID, platform models.Platform, err error) {
	errType := classify(err)
	if errType == models.ErrorNetwork {
		errType = models.ErrorStorage
	}
	o.recordError(runID, &platform, errType, err.Error())
}

func (o *Orchestrator) recordError(runID uuid.UUID, platform *models.Platform, errType models.ErrorType, message string) {
	metrics.RecordScrapeError(platformKey(platform), string(errType))
	if err := o.runs.RecordError(context.Background(), runID, platform, errType, message); err != nil {
		o.logger.WithError(err).WithField("run_id", runID).Error("failed to persist scrape error")
	}
}

func platformKey(p *models.Platform) string {
	if p == nil {
		return "run"
	}
	return string(*p)
}

// classify maps an arbitrary pipeline error onto the stored taxonomy.
func classify(err error) models.ErrorType {
	var srcErr *scrape.SourceError
	if errors.As(err, &srcErr) {
		return srcErr.Type
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return models.ErrorTimeout
	}
	return models.ErrorNetwork
}
