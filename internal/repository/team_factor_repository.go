package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/bowl-pool/internal/database"
	"github.com/yourusername/bowl-pool/internal/models"
)

// PostgresTeamFactorRepository implements TeamFactorRepository for PostgreSQL
type PostgresTeamFactorRepository struct {
	db *database.DB
}

// NewPostgresTeamFactorRepository creates a new team-factor repository
func NewPostgresTeamFactorRepository(db *database.DB) TeamFactorRepository {
	return &PostgresTeamFactorRepository{db: db}
}

// ReplaceAll replaces the stored factor set with the given records
func (r *PostgresTeamFactorRepository) ReplaceAll(ctx context.Context, factors []models.TeamFactor) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM team_factors`); err != nil {
			return fmt.Errorf("failed to clear team factors: %w", err)
		}

		query := `
			INSERT INTO team_factors (team, multiplier, probability, source_row)
			VALUES ($1, $2, $3, $4)
		`
		for _, factor := range factors {
			_, err := tx.Exec(ctx, query,
				factor.Team, factor.Multiplier, factor.Probability, factor.Row,
			)
			if err != nil {
				return fmt.Errorf("failed to insert factor for %q: %w", factor.Team, err)
			}
		}
		return nil
	})
}

// GetAll retrieves every team factor
func (r *PostgresTeamFactorRepository) GetAll(ctx context.Context) ([]models.TeamFactor, error) {
	query := `
		SELECT team, multiplier, probability, source_row
		FROM team_factors
		ORDER BY team
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team factors: %w", err)
	}
	defer rows.Close()

	var factors []models.TeamFactor
	for rows.Next() {
		var factor models.TeamFactor
		if err := rows.Scan(&factor.Team, &factor.Multiplier, &factor.Probability, &factor.Row); err != nil {
			return nil, fmt.Errorf("failed to scan team factor: %w", err)
		}
		factors = append(factors, factor)
	}

	return factors, rows.Err()
}
