// Package config provides configuration management for the Odds Radar
// application.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.Database.URL == "" {
		if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("database requires either a url or host/name/user fields")
		}
	}

	if cfg.Database.MinConnections > cfg.Database.MaxConnections {
		return fmt.Errorf("min_connections cannot exceed max_connections")
	}

	if cfg.IsProduction() && cfg.Database.URL == "" && cfg.Database.SSLMode == "disable" {
		return fmt.Errorf("production environment requires SSL mode to be 'require' or 'verify-full'")
	}

	if !cfg.Sources.Reference.Enabled && !cfg.Sources.SportyBet.Enabled && !cfg.Sources.Bet9ja.Enabled {
		return fmt.Errorf("at least one source must be enabled")
	}

	if cfg.Scheduler.Enabled && cfg.Scheduler.ScrapeCron == "" {
		return fmt.Errorf("scheduler requires a scrape_cron expression when enabled")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "url":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "oneof":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
