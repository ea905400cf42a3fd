// Package main provides the scrape CLI: one-shot runs and source health
// probes without going through the API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/odds-radar/internal/broadcast"
	"github.com/yourusername/odds-radar/internal/config"
	"github.com/yourusername/odds-radar/internal/database"
	"github.com/yourusername/odds-radar/internal/health"
	applogger "github.com/yourusername/odds-radar/internal/logger"
	"github.com/yourusername/odds-radar/internal/markets"
	"github.com/yourusername/odds-radar/internal/matcher"
	"github.com/yourusername/odds-radar/internal/metrics"
	"github.com/yourusername/odds-radar/internal/models"
	"github.com/yourusername/odds-radar/internal/normalize"
	"github.com/yourusername/odds-radar/internal/orchestrator"
	"github.com/yourusername/odds-radar/internal/repository"
	"github.com/yourusername/odds-radar/internal/runs"
	"github.com/yourusername/odds-radar/internal/scrape"
	"github.com/yourusername/odds-radar/internal/sources"
)

// Exit codes for the run command.
const (
	exitCompleted   = 0
	exitPartial     = 1
	exitFailed      = 2
	exitInvalidArgs = 3
)

var (
	configFile   string
	platformsArg string
	sportID      string
	tournamentID string
	timeoutSecs  int

	logger *logrus.Logger
	cfg    *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	runCmd.Flags().StringVar(&platformsArg, "platforms", "", "Comma-separated platforms to scrape (default: all enabled)")
	runCmd.Flags().StringVar(&sportID, "sport", "", "Restrict discovery to one sport")
	runCmd.Flags().StringVar(&tournamentID, "tournament", "", "Restrict discovery to one tournament")
	runCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "Run timeout in seconds (default from config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(healthCmd)
}

var rootCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run odds scrapes and probe source health",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfigWithSecrets(configFile)
		if err != nil {
			return err
		}
		logger = applogger.NewLogger(cfg.App.LogLevel, cfg.App.LogJSON)
		metrics.InitRegistry()
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a scrape run and wait for it to finish",
	Run: func(cmd *cobra.Command, args []string) {
		platforms, err := parsePlatforms(platformsArg)
		if err != nil {
			logger.Errorf("Invalid platforms argument: %v", err)
			os.Exit(exitInvalidArgs)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		run, err := executeRun(ctx, orchestrator.Request{
			Platforms:    platforms,
			SportID:      sportID,
			TournamentID: tournamentID,
			Timeout:      time.Duration(timeoutSecs) * time.Second,
			Trigger:      models.TriggerManual,
		})
		if err != nil {
			logger.Errorf("Scrape run failed to start: %v", err)
			os.Exit(exitInvalidArgs)
		}

		scrapeLog := applogger.NewScrapeLogger(logger)
		scrapeLog.LogRunCompleted(run.ID, run.Status, run.EventsScraped, run.EventsFailed, run.Duration())

		switch run.Status {
		case models.RunCompleted:
			os.Exit(exitCompleted)
		case models.RunPartial:
			os.Exit(exitPartial)
		default:
			os.Exit(exitFailed)
		}
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the database and every enabled source",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := database.NewDB(ctx, cfg.GetDatabaseDSN(), database.PoolConfig{
			MaxConns: int32(cfg.Database.MaxConnections),
			MinConns: int32(cfg.Database.MinConnections),
		})
		if err != nil {
			return err
		}
		defer db.Close()

		srcs, err := buildSources(cfg, logger)
		if err != nil {
			return err
		}
		defer closeSources(srcs)

		report := health.NewChecker(srcs, db, logger).Check(ctx)
		fmt.Printf("status: %s\n", report.Status)
		fmt.Printf("database: %s\n", report.Database.Status)
		for _, ph := range report.Platforms {
			fmt.Printf("%s: %s response_time_ms=%d error=%s\n", ph.Platform, ph.Status, ph.ResponseTimeMS, ph.Error)
		}
		if report.Status == "unhealthy" {
			os.Exit(exitFailed)
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func executeRun(ctx context.Context, req orchestrator.Request) (*models.ScrapeRun, error) {
	db, _, err := database.Initialize(ctx, database.InitOptions{
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
		return nil, err
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		return nil, err
	}

	srcs, err := buildSources(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer closeSources(srcs)

	m := matcher.New(repos.Event, repos.FixtureLink, repos.Snapshot, logger)
	bus := broadcast.New(logger)
	runSvc := runs.NewService(repos.Run, logger)
	orch := orchestrator.New(srcs, m, repos.Snapshot, repos.Bookmaker, repos.Catalog, runSvc, bus, logger)

	return orch.Execute(ctx, req)
}

func parsePlatforms(raw string) ([]models.Platform, error) {
	if raw == "" {
		return nil, nil
	}
	var platforms []models.Platform
	for _, part := range strings.Split(raw, ",") {
		p, err := models.ParsePlatform(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("unknown platform %q", part)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

func loadConfigWithSecrets(path string) (*config.Config, error) {
	loaded, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return nil, fmt.Errorf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(loaded, region, secretName); err != nil {
			return nil, fmt.Errorf("failed to load secrets: %w", err)
		}
	}
	if err := config.Validate(loaded); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return loaded, nil
}

func closeSources(srcs []sources.Source) {
	for _, src := range srcs {
		src.Close()
	}
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
