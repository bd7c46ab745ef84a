// Package repository provides postgres-backed storage for ingested pool
// records: bowls, team factors and picks.
package repository

import (
	"context"

	"github.com/yourusername/bowl-pool/internal/models"
)

// BowlRepository defines storage operations for bowl records
type BowlRepository interface {
	ReplaceAll(ctx context.Context, bowls []models.Bowl) error
	GetAll(ctx context.Context) ([]models.Bowl, error)
	GetByName(ctx context.Context, name string) (*models.Bowl, error)
}

// TeamFactorRepository defines storage operations for team-factor records
type TeamFactorRepository interface {
	ReplaceAll(ctx context.Context, factors []models.TeamFactor) error
	GetAll(ctx context.Context) ([]models.TeamFactor, error)
}

// PickRepository defines storage operations for pick records
type PickRepository interface {
	ReplaceAll(ctx context.Context, picks []models.Pick) error
	GetAll(ctx context.Context) ([]models.Pick, error)
	GetByBettor(ctx context.Context, bettor string) ([]models.Pick, error)
}
