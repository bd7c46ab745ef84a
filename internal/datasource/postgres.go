package datasource

import (
	"context"
	"fmt"

	"github.com/yourusername/bowl-pool/internal/models"
	"github.com/yourusername/bowl-pool/internal/repository"
)

// PostgresSource reads previously ingested pool records from the database
type PostgresSource struct {
	repos *repository.Repositories
}

// NewPostgresSource creates a record source backed by the record repositories
func NewPostgresSource(repos *repository.Repositories) (*PostgresSource, error) {
	if repos == nil {
		return nil, fmt.Errorf("repositories are required")
	}
	return &PostgresSource{repos: repos}, nil
}

// Name returns the name of the record source
func (s *PostgresSource) Name() string {
	return "postgres"
}

// FetchBowls retrieves the stored bowl list in ingestion order
func (s *PostgresSource) FetchBowls(ctx context.Context) ([]models.Bowl, error) {
	bowls, err := s.repos.Bowl.GetAll(ctx)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeServerError, "failed to load bowls", err)
	}
	return bowls, nil
}

// FetchTeamFactors retrieves the stored team factor table
func (s *PostgresSource) FetchTeamFactors(ctx context.Context) ([]models.TeamFactor, error) {
	factors, err := s.repos.TeamFactor.GetAll(ctx)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeServerError, "failed to load team factors", err)
	}
	return factors, nil
}

// FetchPicks retrieves the stored picks in ingestion order
func (s *PostgresSource) FetchPicks(ctx context.Context) ([]models.Pick, error) {
	picks, err := s.repos.Pick.GetAll(ctx)
	if err != nil {
		return nil, NewSourceError(s.Name(), ErrCodeServerError, "failed to load picks", err)
	}
	return picks, nil
}
