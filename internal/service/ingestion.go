package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/datasource"
	"github.com/yourusername/bowl-pool/internal/metrics"
	"github.com/yourusername/bowl-pool/internal/pool"
	"github.com/yourusername/bowl-pool/internal/repository"
)

// IngestionService syncs pool records from a source into the database so
// later runs can read them from postgres instead of refetching the sheet.
type IngestionService struct {
	source    datasource.RecordSource
	repos     *repository.Repositories
	validator *PickValidator
	metrics   *IngestionMetrics
	logger    *logrus.Logger
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	source datasource.RecordSource,
	repos *repository.Repositories,
	validator *PickValidator,
	logger *logrus.Logger,
) (*IngestionService, error) {
	if source == nil {
		return nil, fmt.Errorf("record source is required")
	}
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	if validator == nil {
		validator = NewPickValidator(logger)
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &IngestionService{
		source:    source,
		repos:     repos,
		validator: validator,
		metrics:   NewIngestionMetrics(),
		logger:    logger,
	}, nil
}

// Sync fetches all three record sets, validates them, and replaces the
// stored copies. Malformed bowls abort the sync before anything is written;
// pick violations are logged as warnings and the records stored as-is.
func (s *IngestionService) Sync(ctx context.Context) (*IngestionMetrics, error) {
	s.metrics.Reset()
	startTime := time.Now()

	s.logger.WithField("source", s.source.Name()).Info("Starting record sync")

	bowls, err := s.source.FetchBowls(ctx)
	if err != nil {
		s.metrics.Errors++
		return s.metrics, fmt.Errorf("failed to fetch bowls: %w", err)
	}

	factors, err := s.source.FetchTeamFactors(ctx)
	if err != nil {
		s.metrics.Errors++
		return s.metrics, fmt.Errorf("failed to fetch team factors: %w", err)
	}

	picks, err := s.source.FetchPicks(ctx)
	if err != nil {
		s.metrics.Errors++
		return s.metrics, fmt.Errorf("failed to fetch picks: %w", err)
	}

	// A registry build proves the bowl set is well formed before any
	// stored records are replaced.
	registry, err := pool.NewRegistry(bowls)
	if err != nil {
		s.metrics.Errors++
		return s.metrics, fmt.Errorf("bowl records failed validation: %w", err)
	}

	warnings := s.validator.ValidatePicks(picks, registry)
	s.metrics.Warnings = len(warnings)

	if err := s.repos.Bowl.ReplaceAll(ctx, bowls); err != nil {
		s.metrics.Errors++
		return s.metrics, fmt.Errorf("failed to store bowls: %w", err)
	}
	if err := s.repos.TeamFactor.ReplaceAll(ctx, factors); err != nil {
		s.metrics.Errors++
		return s.metrics, fmt.Errorf("failed to store team factors: %w", err)
	}
	if err := s.repos.Pick.ReplaceAll(ctx, picks); err != nil {
		s.metrics.Errors++
		return s.metrics, fmt.Errorf("failed to store picks: %w", err)
	}

	s.metrics.Bowls = len(bowls)
	s.metrics.TeamFactors = len(factors)
	s.metrics.Picks = len(picks)
	s.metrics.Duration = time.Since(startTime)

	metrics.RecordIngestionSync(s.metrics.Duration.Seconds())
	metrics.RecordRecordsIngested("bowls", len(bowls))
	metrics.RecordRecordsIngested("team_factors", len(factors))
	metrics.RecordRecordsIngested("picks", len(picks))

	s.logger.WithFields(logrus.Fields{
		"bowls":        s.metrics.Bowls,
		"team_factors": s.metrics.TeamFactors,
		"picks":        s.metrics.Picks,
		"warnings":     s.metrics.Warnings,
		"duration":     s.metrics.Duration,
	}).Info("Record sync complete")

	return s.metrics, nil
}

// GetMetrics returns the metrics from the most recent sync
func (s *IngestionService) GetMetrics() *IngestionMetrics {
	return s.metrics
}
