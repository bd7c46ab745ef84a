// Package config provides configuration management for the bowl-pool engine.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App         AppConfig         `mapstructure:"app" validate:"required"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Pool        PoolConfig        `mapstructure:"pool" validate:"required"`
	DataSources DataSourcesConfig `mapstructure:"data_sources" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration. Optional:
// the engine can run straight off CSV without a database.
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// PoolConfig represents scenario-engine configuration
type PoolConfig struct {
	MaxUndecidedBowls  int    `mapstructure:"max_undecided_bowls" validate:"required,gt=0,lte=62"`
	Workers            int    `mapstructure:"workers" validate:"omitempty,gt=0"`
	ScoringMode        string `mapstructure:"scoring_mode" validate:"required,scoringmode"`
	ProbabilityEnabled bool   `mapstructure:"probability_enabled"`
	OutputPath         string `mapstructure:"output_path"`
}

// DataSourcesConfig selects where bowl, team-factor and pick records come
// from: local CSV files, a published-sheet CSV export, or postgres.
type DataSourcesConfig struct {
	Provider string            `mapstructure:"provider" validate:"required,oneof=csv sheet postgres"`
	CSV      CSVSourceConfig   `mapstructure:"csv"`
	Sheet    SheetSourceConfig `mapstructure:"sheet"`
}

// CSVSourceConfig points at the three local record files
type CSVSourceConfig struct {
	BowlsPath   string `mapstructure:"bowls_path"`
	FactorsPath string `mapstructure:"factors_path"`
	PicksPath   string `mapstructure:"picks_path"`
}

// SheetSourceConfig points at the three published-CSV worksheet exports
type SheetSourceConfig struct {
	BowlsURL        string  `mapstructure:"bowls_url" validate:"omitempty,url"`
	FactorsURL      string  `mapstructure:"factors_url" validate:"omitempty,url"`
	PicksURL        string  `mapstructure:"picks_url" validate:"omitempty,url"`
	Token           string  `mapstructure:"token"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds" validate:"omitempty,gt=0"`
	RateLimit       float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
	TimeoutSeconds  int     `mapstructure:"timeout_seconds" validate:"omitempty,gt=0"`
	MaxRetries      int     `mapstructure:"max_retries" validate:"omitempty,gte=0"`
}

// IngestionConfig represents the sheet-to-database sync configuration
type IngestionConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// HasDatabase reports whether a database connection is configured.
func (c *Config) HasDatabase() bool {
	return c.Database.Host != "" && c.Database.Name != ""
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
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
