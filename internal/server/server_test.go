package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/odds-radar/internal/broadcast"
	"github.com/yourusername/odds-radar/internal/health"
	"github.com/yourusername/odds-radar/internal/history"
	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/orchestrator"
	"github.com/yourusername/odds-radar/internal/repository"
	"github.com/yourusername/odds-radar/internal/runs"
	"github.com/yourusername/odds-radar/internal/sources"
)

type fakeStarter struct {
	mu   sync.Mutex
	reqs []orchestrator.Request
	run  *models.ScrapeRun
	err  error
}

func (f *fakeStarter) Start(_ context.Context, req orchestrator.Request) (*models.ScrapeRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.run, nil
}

type fakeRunRepo struct {
	repository.RunRepository

	mu   sync.Mutex
	runs map[uuid.UUID]*models.ScrapeRun
}

func (f *fakeRunRepo) GetByID(_ context.Context, id uuid.UUID) (*models.ScrapeRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return run, nil
}

func (f *fakeRunRepo) List(_ context.Context, _, _ int) ([]*models.ScrapeRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.ScrapeRun
	for _, r := range f.runs {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRunRepo) ListErrors(_ context.Context, _ uuid.UUID, _, _ int) ([]*models.ScrapeError, error) {
	return nil, nil
}

type fakeEventRepo struct {
	repository.EventRepository
}

func (f *fakeEventRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Event, error) {
	return nil, models.ErrNotFound
}

type fakeBookieRepo struct {
	repository.BookmakerRepository
}

func (f *fakeBookieRepo) List(_ context.Context) ([]*models.Bookmaker, error) { return nil, nil }

func (f *fakeBookieRepo) GetBySlug(_ context.Context, _ string) (*models.Bookmaker, error) {
	return nil, models.ErrNotFound
}

type fakeSnapRepo struct {
	repository.SnapshotRepository
}

type fakeLinkRepo struct {
	repository.FixtureLinkRepository
}

func (f *fakeLinkRepo) CoverageStats(_ context.Context) (*repository.CoverageStats, error) {
	return &repository.CoverageStats{TotalEvents: 3, MatchedEvents: 2}, nil
}

type okPinger struct{}

func (okPinger) HealthCheck(_ context.Context) error { return nil }

type fixture struct {
	server  *Server
	starter *fakeStarter
	runRepo *fakeRunRepo
	bus     *broadcast.Broadcaster
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	starter := &fakeStarter{run: &models.ScrapeRun{ID: uuid.New(), Status: models.RunRunning}}
	runRepo := &fakeRunRepo{runs: make(map[uuid.UUID]*models.ScrapeRun)}
	bus := broadcast.New(logger)

	historySvc := history.NewService(&fakeEventRepo{}, &fakeLinkRepo{}, &fakeSnapRepo{}, &fakeBookieRepo{}, logger)
	checker := health.NewChecker([]sources.Source{}, okPinger{}, logger)

	srv := New(starter, runs.NewService(runRepo, logger), historySvc, checker, bus, logger, Options{})
	return &fixture{server: srv, starter: starter, runRepo: runRepo, bus: bus}
}

func (f *fixture) addRun(run *models.ScrapeRun) {
	f.runRepo.mu.Lock()
	defer f.runRepo.mu.Unlock()
	f.runRepo.runs[run.ID] = run
}

func TestStartScrapeAccepted(t *testing.T) {
	f := newFixture(t)

	body := bytes.NewBufferString(`{"platforms":["reference","bet9ja"],"timeout_seconds":60}`)
	req := httptest.NewRequest(http.MethodPost, "/scrape", body)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, f.starter.reqs, 1)
	assert.Equal(t, []models.Platform{models.PlatformReference, models.PlatformBet9ja}, f.starter.reqs[0].Platforms)
	assert.Equal(t, 60*time.Second, f.starter.reqs[0].Timeout)
}

func TestStartScrapeUnknownPlatform(t *testing.T) {
	f := newFixture(t)

	body := bytes.NewBufferString(`{"platforms":["betway"]}`)
	req := httptest.NewRequest(http.MethodPost, "/scrape", body)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "validation", problem.ErrorType)
	assert.Empty(t, f.starter.reqs)
}

func TestGetRunNotFound(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/scrape/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var problem Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "not_found", problem.ErrorType)
}

func TestRetryRejectsForeignPlatform(t *testing.T) {
	f := newFixture(t)
	run := &models.ScrapeRun{ID: uuid.New(), Status: models.RunPartial, Platforms: []models.Platform{models.PlatformReference}}
	f.addRun(run)

	body := bytes.NewBufferString(`{"platforms":["bet9ja"]}`)
	req := httptest.NewRequest(http.MethodPost, "/scrape/"+run.ID.String()+"/retry", body)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.starter.reqs)
}

func TestRetryDefaultsToOriginalPlatforms(t *testing.T) {
	f := newFixture(t)
	run := &models.ScrapeRun{ID: uuid.New(), Status: models.RunFailed, Platforms: []models.Platform{models.PlatformSportyBet}}
	f.addRun(run)

	req := httptest.NewRequest(http.MethodPost, "/scrape/"+run.ID.String()+"/retry", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, f.starter.reqs, 1)
	assert.Equal(t, []models.Platform{models.PlatformSportyBet}, f.starter.reqs[0].Platforms)
	assert.Equal(t, models.TriggerRetry, f.starter.reqs[0].Trigger)
}

func TestGetEventInvalidID(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOddsHistoryRequiresBookmaker(t *testing.T) {
	f := newFixture(t)

	url := "/events/" + uuid.NewString() + "/markets/3743/history"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var problem Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Contains(t, problem.Message, "bookmaker_slug")
}

func TestListRunsRouteNotShadowedByRunID(t *testing.T) {
	f := newFixture(t)
	f.addRun(&models.ScrapeRun{ID: uuid.New(), Status: models.RunCompleted})

	req := httptest.NewRequest(http.MethodGet, "/scrape/runs?limit=10", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Runs []*models.ScrapeRun `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Runs, 1)
}

func TestCoverageStats(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/events/coverage", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats repository.CoverageStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalEvents)
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var report health.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "healthy", report.Status)
	assert.Equal(t, health.StatusUp, report.Database.Status)
}

func TestProgressStreamGoneForTerminalRun(t *testing.T) {
	f := newFixture(t)
	run := &models.ScrapeRun{ID: uuid.New(), Status: models.RunCompleted}
	f.addRun(run)

	req := httptest.NewRequest(http.MethodGet, "/scrape/runs/"+run.ID.String()+"/progress", nil)
	rec := httptest.NewRecorder()
	f.server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestProgressStreamDeliversEvents(t *testing.T) {
	f := newFixture(t)
	run := &models.ScrapeRun{ID: uuid.New(), Status: models.RunRunning}
	f.addRun(run)

	ts := httptest.NewServer(f.server.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/scrape/runs/" + run.ID.String() + "/progress")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	platform := models.PlatformReference
	f.bus.PublishProgress(&broadcast.ProgressEvent{
		RunID:    run.ID,
		Platform: &platform,
		Phase:    models.PhaseScraping,
		Message:  "fetching 5 events",
	})
	f.bus.PublishProgress(&broadcast.ProgressEvent{
		RunID: run.ID,
		Phase: models.PhaseCompleted,
	})

	reader := bufio.NewReader(resp.Body)
	var payloads []broadcast.ProgressEvent
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev broadcast.ProgressEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &ev))
		payloads = append(payloads, ev)
	}

	require.NotEmpty(t, payloads)
	assert.Equal(t, models.PhaseScraping, payloads[0].Phase)
	assert.Equal(t, models.PhaseCompleted, payloads[len(payloads)-1].Phase)
}

func TestProgressStreamIgnoresOtherRuns(t *testing.T) {
	f := newFixture(t)
	run := &models.ScrapeRun{ID: uuid.New(), Status: models.RunRunning}
	f.addRun(run)

	ts := httptest.NewServer(f.server.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/scrape/runs/" + run.ID.String() + "/progress")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Another run's terminal event must not close or pollute this stream.
	f.bus.PublishProgress(&broadcast.ProgressEvent{RunID: uuid.New(), Phase: models.PhaseCompleted})
	f.bus.PublishProgress(&broadcast.ProgressEvent{RunID: run.ID, Phase: models.PhaseCompleted})

	reader := bufio.NewReader(resp.Body)
	var payloads []broadcast.ProgressEvent
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev broadcast.ProgressEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(strings.TrimSpace(line), "data: ")), &ev))
		payloads = append(payloads, ev)
	}

	require.Len(t, payloads, 1)
	assert.Equal(t, run.ID, payloads[0].RunID)
}

func TestWebSocketDeliversEnvelopes(t *testing.T) {
	f := newFixture(t)

	ts := httptest.NewServer(f.server.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?topics=odds_updates"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	f.bus.PublishOddsUpdate(&broadcast.OddsUpdate{
		RunID:      uuid.New(),
		Platform:   models.PlatformBet9ja,
		EventID:    uuid.New(),
		SnapshotID: uuid.New(),
		Timestamp:  time.Now().UTC(),
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var envelope wsEnvelope
	require.NoError(t, conn.ReadJSON(&envelope))
	assert.Equal(t, broadcast.TopicOddsUpdates, envelope.Type)
	assert.NotNil(t, envelope.Data)
}

func TestWebSocketAnswersClientPing(t *testing.T) {
	f := newFixture(t)

	ts := httptest.NewServer(f.server.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?topics=odds_updates"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var envelope wsEnvelope
	require.NoError(t, conn.ReadJSON(&envelope))
	assert.Equal(t, "pong", envelope.Type)
	assert.False(t, envelope.Timestamp.IsZero())
}

func TestWebSocketReplayOnConnect(t *testing.T) {
	f := newFixture(t)

	// Publish before any subscriber exists; the replay cache must deliver it.
	f.bus.PublishOddsUpdate(&broadcast.OddsUpdate{
		RunID:     uuid.New(),
		Platform:  models.PlatformSportyBet,
		EventID:   uuid.New(),
		Timestamp: time.Now().UTC(),
	})

	ts := httptest.NewServer(f.server.Router())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?topics=odds_updates"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var envelope wsEnvelope
	require.NoError(t, conn.ReadJSON(&envelope))
	assert.Equal(t, broadcast.TopicOddsUpdates, envelope.Type)
}
