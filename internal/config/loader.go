// Package config provides configuration management for the Odds Radar
// application.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := newViper()
	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields. A missing config file is not an error; defaults and environment
// variables carry the whole configuration.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ODDS_RADAR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "odds-radar")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_json", false)

	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.min_connections", 1)
	v.SetDefault("database.retention_days", 30)
	v.SetDefault("database.migrations_path", "file://db/migrations")

	v.SetDefault("scrape.timeout_seconds", 30)
	v.SetDefault("scrape.max_concurrent_fetches", 10)
	v.SetDefault("scrape.request_interval_ms", 50)
	v.SetDefault("scrape.retry_max", 3)
	v.SetDefault("scrape.user_agent", "odds-radar/1.0")

	v.SetDefault("sources.reference.base_url", "https://www.betpawa.ng")
	v.SetDefault("sources.reference.enabled", true)
	v.SetDefault("sources.sportybet.base_url", "https://www.sportybet.com")
	v.SetDefault("sources.sportybet.enabled", true)
	v.SetDefault("sources.bet9ja.base_url", "https://sports.bet9ja.com")
	v.SetDefault("sources.bet9ja.enabled", true)

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout_seconds", 15)

	v.SetDefault("scheduler.enabled", false)
	v.SetDefault("scheduler.scrape_cron", "*/30 * * * *")
	v.SetDefault("scheduler.partition_cron", "0 3 * * *")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// applyEnvOverrides maps the well-known bare environment variables onto the
// config. DATABASE_URL and SCRAPE_LOG_JSON predate the prefixed scheme and
// stay supported.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if raw := os.Getenv("SCRAPE_LOG_JSON"); raw != "" {
		cfg.App.LogJSON = raw == "true" || raw == "1"
	}
}
