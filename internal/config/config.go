// Package config provides configuration management for the Odds Radar
// application.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Scrape    ScrapeConfig    `mapstructure:"scrape" validate:"required"`
	Sources   SourcesConfig   `mapstructure:"sources" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
	LogJSON     bool   `mapstructure:"log_json"`
}

// DatabaseConfig represents database connection configuration. URL wins when
// set; otherwise the DSN is composed from the individual fields.
type DatabaseConfig struct {
	URL            string `mapstructure:"url"`
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MinConnections int    `mapstructure:"min_connections" validate:"gte=0"`
	RetentionDays  int    `mapstructure:"retention_days" validate:"required,gt=0"`
	MigrationsPath string `mapstructure:"migrations_path" validate:"required"`
}

// ScrapeConfig represents scrape pipeline configuration
type ScrapeConfig struct {
	TimeoutSeconds       int    `mapstructure:"timeout_seconds" validate:"required,gte=5,lte=300"`
	MaxConcurrentFetches int    `mapstructure:"max_concurrent_fetches" validate:"required,gt=0"`
	RequestIntervalMS    int    `mapstructure:"request_interval_ms" validate:"required,gt=0"`
	RetryMax             int    `mapstructure:"retry_max" validate:"gte=0"`
	UserAgent            string `mapstructure:"user_agent" validate:"required"`
}

// SourceConfig represents one platform's scrape target
type SourceConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Enabled bool   `mapstructure:"enabled"`
}

// SourcesConfig represents the scraped platforms
type SourcesConfig struct {
	Reference SourceConfig `mapstructure:"reference" validate:"required"`
	SportyBet SourceConfig `mapstructure:"sportybet" validate:"required"`
	Bet9ja    SourceConfig `mapstructure:"bet9ja" validate:"required"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Address            string `mapstructure:"address" validate:"required"`
	ReadTimeoutSeconds int    `mapstructure:"read_timeout_seconds" validate:"gte=0"`
}

// SchedulerConfig represents cron scheduling configuration
type SchedulerConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	ScrapeCron    string `mapstructure:"scrape_cron"`
	PartitionCron string `mapstructure:"partition_cron"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// ScrapeTimeout returns the configured run timeout as a duration
func (c *Config) ScrapeTimeout() time.Duration {
	return time.Duration(c.Scrape.TimeoutSeconds) * time.Second
}

// RequestInterval returns the per-source request pacing interval
func (c *Config) RequestInterval() time.Duration {
	return time.Duration(c.Scrape.RequestIntervalMS) * time.Millisecond
}
