package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/bowl-pool/internal/database"
	"github.com/yourusername/bowl-pool/internal/models"
)

// PostgresPickRepository implements PickRepository for PostgreSQL
type PostgresPickRepository struct {
	db *database.DB
}

// NewPostgresPickRepository creates a new pick repository
func NewPostgresPickRepository(db *database.DB) PickRepository {
	return &PostgresPickRepository{db: db}
}

// ReplaceAll replaces the stored picks with the given records. Duplicates are
// kept as-is: the engine's first-pick-wins fallback depends on replaying
// picks in input order, which the position column preserves.
func (r *PostgresPickRepository) ReplaceAll(ctx context.Context, picks []models.Pick) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM picks`); err != nil {
			return fmt.Errorf("failed to clear picks: %w", err)
		}

		query := `
			INSERT INTO picks (bettor, bowl, team, points, source_row, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		for position, pick := range picks {
			_, err := tx.Exec(ctx, query,
				pick.Bettor, pick.Bowl, pick.Team, pick.Points, pick.Row, position,
			)
			if err != nil {
				return fmt.Errorf("failed to insert pick for %q: %w", pick.Bettor, err)
			}
		}
		return nil
	})
}

// GetAll retrieves every pick in stored input order
func (r *PostgresPickRepository) GetAll(ctx context.Context) ([]models.Pick, error) {
	query := `
		SELECT bettor, bowl, team, points, source_row
		FROM picks
		ORDER BY position
	`

	rows, err := r.db.GetPool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks: %w", err)
	}
	defer rows.Close()

	return scanPicks(rows)
}

// GetByBettor retrieves one bettor's picks in stored input order
func (r *PostgresPickRepository) GetByBettor(ctx context.Context, bettor string) ([]models.Pick, error) {
	query := `
		SELECT bettor, bowl, team, points, source_row
		FROM picks
		WHERE bettor = $1
		ORDER BY position
	`

	rows, err := r.db.GetPool().Query(ctx, query, bettor)
	if err != nil {
		return nil, fmt.Errorf("failed to query picks by bettor: %w", err)
	}
	defer rows.Close()

	return scanPicks(rows)
}

func scanPicks(rows pgx.Rows) ([]models.Pick, error) {
	var picks []models.Pick
	for rows.Next() {
		var pick models.Pick
		if err := rows.Scan(&pick.Bettor, &pick.Bowl, &pick.Team, &pick.Points, &pick.Row); err != nil {
			return nil, fmt.Errorf("failed to scan pick: %w", err)
		}
		picks = append(picks, pick)
	}
	return picks, rows.Err()
}
