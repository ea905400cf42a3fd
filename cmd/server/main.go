// Package main provides the entry point for the odds-radar API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/odds-radar/internal/broadcast"
	"github.com/yourusername/odds-radar/internal/config"
	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/health"
	"github.com/yourusername/odds-radar/internal/history"
	applogger "github.com/yourusername/odds-radar/internal/logger"
	"github.com/yourusername/odds-radar/internal/markets"
	"github.com/yourusername/odds-radar/internal/matcher"
	"github.com/yourusername/odds-radar/internal/metrics"
	"github.com/yourusername/odds-radar/internal/normalize"
	"github.com/yourusername/odds-radar/internal/orchestrator"
	"github.com/yourusername/odds-radar/internal/repository"
	"github.com/yourusername/odds-radar/internal/runs"
	"github.com/yourusername/odds-radar/internal/scheduler"
	"github.com/yourusername/odds-radar/internal/scrape"
	"github.com/yourusername/odds-radar/internal/server"
	"github.com/yourusername/odds-radar/internal/sources"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
	)
	flag.Parse()

	cfg := loadConfigWithSecrets(*configPath)
	logger := applogger.NewLogger(cfg.App.LogLevel, cfg.App.LogJSON)
	metrics.InitRegistry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalf("Server exited with error: %v", err)
	}
	logger.Info("Server shut down cleanly")
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	db, partitions, err := database.Initialize(ctx, database.InitOptions{
		DatabaseURL:   cfg.GetDatabaseDSN(),
		MigrationsURL: cfg.Database.MigrationsPath,
		RetentionDays: cfg.Database.RetentionDays,
		Pool: database.PoolConfig{
			MaxConns: int32(cfg.Database.MaxConnections),
			MinConns: int32(cfg.Database.MinConnections),
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		return err
	}

	srcs, err := buildSources(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		for _, src := range srcs {
			src.Close()
		}
	}()

	m := matcher.New(repos.Event, repos.FixtureLink, repos.Snapshot, logger)
	if merged, err := m.SweepOrphans(ctx); err != nil {
		logger.WithError(err).Warn("Orphan sweep at startup failed")
	} else if merged > 0 {
		logger.WithField("merged", merged).Info("Merged orphan events at startup")
	}

	bus := broadcast.New(logger)
	runSvc := runs.NewService(repos.Run, logger)
	historySvc := history.NewService(repos.Event, repos.FixtureLink, repos.Snapshot, repos.Bookmaker, logger)
	checker := health.NewChecker(srcs, db, logger)
	orch := orchestrator.New(srcs, m, repos.Snapshot, repos.Bookmaker, repos.Catalog, runSvc, bus, logger)

	if cfg.Scheduler.Enabled {
		sched := scheduler.NewScheduler(orch, partitions, logger)
		if err := sched.ScheduleScrape(cfg.Scheduler.ScrapeCron); err != nil {
			return err
		}
		if err := sched.SchedulePartitionMaintenance(cfg.Scheduler.PartitionCron); err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}
		defer sched.Stop()
		logger.WithField("next_run", sched.GetNextRun()).Info("Scheduler started")
	}

	srv := server.New(orch, runSvc, historySvc, checker, bus, logger, server.Options{
		Addr:        cfg.Server.Address,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	})
	return srv.Serve(ctx)
}

func loadConfigWithSecrets(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			logrus.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			logrus.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// buildSources assembles a source per enabled platform: HTTP client plus
// normalizer over the shared market registry.
func buildSources(cfg *config.Config, logger *logrus.Logger) ([]sources.Source, error) {
	registry, err := markets.NewRegistry()
	if err != nil {
		return nil, err
	}

	httpCfg := scrape.DefaultHTTPClientConfig()
	httpCfg.MaxRetries = cfg.Scrape.RetryMax
	httpCfg.RequestInterval = cfg.RequestInterval()
	if cfg.Scrape.UserAgent != "" {
		httpCfg.UserAgent = cfg.Scrape.UserAgent
	}

	var srcs []sources.Source
	if cfg.Sources.Reference.Enabled {
		client := scrape.NewReferenceClient(cfg.Sources.Reference.BaseURL, httpCfg, logger)
		srcs = append(srcs, sources.NewReferenceSource(client, normalize.NewReferenceNormalizer(registry)))
	}
	if cfg.Sources.SportyBet.Enabled {
		client := scrape.NewSportyBetClient(cfg.Sources.SportyBet.BaseURL, httpCfg, logger)
		srcs = append(srcs, sources.NewSportyBetSource(client, normalize.NewSportyBetNormalizer(registry)))
	}
	if cfg.Sources.Bet9ja.Enabled {
		client := scrape.NewBet9jaClient(cfg.Sources.Bet9ja.BaseURL, httpCfg, logger)
		srcs = append(srcs, sources.NewBet9jaSource(client, normalize.NewBet9jaNormalizer(registry)))
	}
	return srcs, nil
}
