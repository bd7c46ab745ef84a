package database

import (
	"context"
	"fmt"
)

// Schema statements for the pool record tables. Picks keep their source
// position so duplicate rows replay in input order.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS bowls (
		name        TEXT PRIMARY KEY,
		team_a      TEXT NOT NULL,
		team_b      TEXT NOT NULL,
		decided     BOOLEAN NOT NULL DEFAULT FALSE,
		winner      TEXT NOT NULL DEFAULT '',
		source_row  INTEGER NOT NULL DEFAULT 0,
		position    INTEGER NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS team_factors (
		team        TEXT PRIMARY KEY,
		multiplier  NUMERIC,
		probability DOUBLE PRECISION,
		source_row  INTEGER NOT NULL DEFAULT 0,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS picks (
		id          BIGSERIAL PRIMARY KEY,
		bettor      TEXT NOT NULL,
		bowl        TEXT NOT NULL,
		team        TEXT NOT NULL,
		points      INTEGER NOT NULL,
		source_row  INTEGER NOT NULL DEFAULT 0,
		position    INTEGER NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_picks_bettor ON picks (bettor)`,
}

// InitSchema creates the record tables if they do not exist.
func (db *DB) InitSchema(ctx context.Context) error {
	for _, statement := range schema {
		if _, err := db.pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
