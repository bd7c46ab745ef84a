package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/bowl-pool/internal/database"
	"github.com/yourusername/bowl-pool/internal/models"
)

// PostgresBowlRepository implements BowlRepository for PostgreSQL
type PostgresBowlRepository struct {
	db *database.DB
}

// NewPostgresBowlRepository creates a new bowl repository
func NewPostgresBowlRepository(db *database.DB) BowlRepository {
	return &PostgresBowlRepository{db: db}
}

// ReplaceAll replaces the stored bowl set with the given records, preserving
// input order through the position column.
func (r *PostgresBowlRepository) ReplaceAll(ctx context.Context, bowls []models.Bowl) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM bowls`); err != nil {
			return fmt.Errorf("failed to clear bowls: %w", err)
		}

		query := `
			INSERT INTO bowls (name, team_a, team_b, decided, winner, source_row, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		for position, bowl := range bowls {
			_, err := tx.Exec(ctx, query,
				bowl.Name, bowl.TeamA, bowl.TeamB, bowl.Decided, bowl.Winner, bowl.Row, position,
			)
			if err != nil {
				return fmt.Errorf("failed to insert bowl %q: %w", bowl.Name, err)
			}
		}
		return nil
	})
}

// GetAll retrieves every bowl in stored input order
func (r *PostgresBowlRepository) GetAll(ctx context.Context) ([]models.Bowl, error) {
	query := `
		SELECT name, team_a, team_b, decided, winner, source_row
		FROM bowls
		ORDER BY position
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bowls: %w", err)
	}
	defer rows.Close()

	var bowls []models.Bowl
	for rows.Next() {
		var bowl models.Bowl
		if err := rows.Scan(&bowl.Name, &bowl.TeamA, &bowl.TeamB, &bowl.Decided, &bowl.Winner, &bowl.Row); err != nil {
			return nil, fmt.Errorf("failed to scan bowl: %w", err)
		}
		bowls = append(bowls, bowl)
	}

	return bowls, rows.Err()
}

// GetByName retrieves a single bowl
func (r *PostgresBowlRepository) GetByName(ctx context.Context, name string) (*models.Bowl, error) {
	query := `
		SELECT name, team_a, team_b, decided, winner, source_row
		FROM bowls WHERE name = $1
	`

	bowl := &models.Bowl{}
	err := r.db.GetPool().QueryRow(ctx, query, name).Scan(
		&bowl.Name, &bowl.TeamA, &bowl.TeamB, &bowl.Decided, &bowl.Winner, &bowl.Row,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bowl: %w", err)
	}

	return bowl, nil
}
