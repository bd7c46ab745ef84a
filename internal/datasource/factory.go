package datasource

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/config"
	"github.com/yourusername/bowl-pool/internal/repository"
)

// Factory creates RecordSource implementations based on configuration
type Factory struct {
	logger *logrus.Logger
	config *config.Config
}

// NewFactory creates a new record source factory
func NewFactory(cfg *config.Config, logger *logrus.Logger) *Factory {
	if logger == nil {
		logger = logrus.New()
	}
	return &Factory{
		logger: logger,
		config: cfg,
	}
}

// NewRecordSource creates the record source the configuration selects.
// Postgres sources need repositories; the other providers ignore them.
func (f *Factory) NewRecordSource(repos *repository.Repositories) (RecordSource, error) {
	src := f.config.DataSources

	switch src.Provider {
	case "csv":
		return NewFileSource(src.CSV.BowlsPath, src.CSV.FactorsPath, src.CSV.PicksPath, f.logger)

	case "sheet":
		return f.newSheetSource()

	case "postgres":
		if repos == nil {
			return nil, fmt.Errorf("postgres record source requires a database connection")
		}
		return NewPostgresSource(repos)

	default:
		return nil, fmt.Errorf("unknown record source provider: %s", src.Provider)
	}
}

func (f *Factory) newSheetSource() (RecordSource, error) {
	sheet := f.config.DataSources.Sheet

	clientCfg := DefaultHTTPClientConfig()
	if sheet.TimeoutSeconds > 0 {
		clientCfg.Timeout = time.Duration(sheet.TimeoutSeconds) * time.Second
	}
	if sheet.MaxRetries > 0 {
		clientCfg.MaxRetries = sheet.MaxRetries
	}
	if sheet.RateLimit > 0 {
		clientCfg.RateLimit = sheet.RateLimit
	}

	client := NewRateLimitedHTTPClient(clientCfg, f.logger)

	source, err := NewSheetSource(client, sheet.BowlsURL, sheet.FactorsURL, sheet.PicksURL, sheet.Token, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet source: %w", err)
	}

	ttl := 5 * time.Minute
	if sheet.CacheTTLSeconds > 0 {
		ttl = time.Duration(sheet.CacheTTLSeconds) * time.Second
	}

	f.logger.WithFields(logrus.Fields{
		"provider":  "sheet",
		"cache_ttl": ttl,
	}).Info("Created record source")
	return NewCachedSource(source, ttl, f.logger), nil
}
