package repository

import (
	"fmt"

	"github.com/yourusername/bowl-pool/internal/database"
)

// Repositories is a container for all record repositories
type Repositories struct {
	Bowl       BowlRepository
	TeamFactor TeamFactorRepository
	Pick       PickRepository
}

// NewRepositories creates all repositories backed by the given database
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	return &Repositories{
		Bowl:       NewPostgresBowlRepository(db),
		TeamFactor: NewPostgresTeamFactorRepository(db),
		Pick:       NewPostgresPickRepository(db),
	}, nil
}
