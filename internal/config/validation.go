// Package config provides configuration management for the bowl-pool engine.
package config

import (
	"fmt"
	"strings"

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
	_ = v.RegisterValidation("scoringmode", validateScoringMode)

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

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validateScoringMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "multiplier", "flat":
		return true
	default:
		return false
	}
}

// validateCrossField enforces constraints spanning multiple sections
func validateCrossField(cfg *Config) error {
	switch cfg.DataSources.Provider {
	case "csv":
		csv := cfg.DataSources.CSV
		if csv.BowlsPath == "" || csv.PicksPath == "" {
			return fmt.Errorf("csv provider requires data_sources.csv.bowls_path and picks_path")
		}
	case "sheet":
		sheet := cfg.DataSources.Sheet
		if sheet.BowlsURL == "" || sheet.PicksURL == "" {
			return fmt.Errorf("sheet provider requires data_sources.sheet.bowls_url and picks_url")
		}
	case "postgres":
		if !cfg.HasDatabase() {
			return fmt.Errorf("postgres provider requires a database configuration")
		}
	}

	if cfg.Ingestion.Enabled {
		if !cfg.HasDatabase() {
			return fmt.Errorf("ingestion requires a database configuration")
		}
		if cfg.Ingestion.Schedule == "" {
			return fmt.Errorf("ingestion requires a cron schedule")
		}
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on %q", err.Namespace(), err.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
