// Package server exposes the HTTP API: run control, history queries, the
// SSE progress stream and the WebSocket feed.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/broadcast"
	"github.com/yourusername/odds-radar/internal/health"
	"github.com/yourusername/odds-radar/internal/history"
	"github.com/yourusername/odds-radar/internal/metrics"
	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/orchestrator"
	"github.com/yourusername/odds-radar/internal/runs"
)

// RunStarter launches scrape runs; the orchestrator implements it.
type RunStarter interface {
	Start(ctx context.Context, req orchestrator.Request) (*models.ScrapeRun, error)
}

// Server is the HTTP layer. Construct with New, then Serve.
type Server struct {
	starter RunStarter
	runs    *runs.Service
	history *history.Service
	checker *health.Checker
	bus     *broadcast.Broadcaster
	logger  *logrus.Entry

	router chi.Router
	http   *http.Server
}

// Options carries the listen address and timeouts.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// New wires the server and its routes.
func New(
	starter RunStarter,
	runSvc *runs.Service,
	historySvc *history.Service,
	checker *health.Checker,
	bus *broadcast.Broadcaster,
	logger *logrus.Logger,
	opts Options,
) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 15 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		starter: starter,
		runs:    runSvc,
		history: historySvc,
		checker: checker,
		bus:     bus,
		logger:  logger.WithField("component", "server"),
	}
	s.router = s.routes()
	s.http = &http.Server{
		Addr:        opts.Addr,
		Handler:     s.router,
		ReadTimeout: opts.ReadTimeout,
		// No write timeout: SSE and WS connections stay open indefinitely.
	}
	return s
}

// Router exposes the handler tree; tests mount it on httptest servers.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/ws", s.handleWebSocket)

	// Static segments win over the {runID} pattern, so /scrape/runs and
	// /scrape/stats never reach parseRunID.
	r.Route("/scrape", func(r chi.Router) {
		r.Post("/", s.handleStartScrape)
		r.Get("/stats", s.handleRunStats)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{runID}/progress", s.handleRunProgress)
		r.Route("/{runID}", func(r chi.Router) {
			r.Get("/", s.handleGetRun)
			r.Post("/retry", s.handleRetryRun)
			r.Get("/errors", s.handleListRunErrors)
			r.Get("/phases", s.handleListRunPhases)
		})
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", s.handleListEvents)
		r.Get("/unmatched", s.handleUnmatchedEvents)
		r.Get("/coverage", s.handleCoverageStats)
		r.Route("/{eventID}", func(r chi.Router) {
			r.Get("/", s.handleGetEvent)
			r.Get("/markets/{marketID}/history", s.handleOddsHistory)
			r.Get("/markets/{marketID}/margin-history", s.handleMarginHistory)
		})
	})

	return r
}

// Serve blocks until the context is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.http.Addr).Info("http server listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.checker.Check(r.Context())
	status := http.StatusOK
	if report.Status == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, report)
}
