// Package datasource provides the record sources the engine can read pool
// data from: local CSV files, published-sheet CSV exports, and postgres.
package datasource

import (
	"context"

	"github.com/yourusername/bowl-pool/internal/models"
)

// RecordSource defines the interface for fetching pool records from a provider
type RecordSource interface {
	// FetchBowls retrieves the bowl list in input order
	FetchBowls(ctx context.Context) ([]models.Bowl, error)

	// FetchTeamFactors retrieves the team factor table
	FetchTeamFactors(ctx context.Context) ([]models.TeamFactor, error)

	// FetchPicks retrieves all bettor picks in input order
	FetchPicks(ctx context.Context) ([]models.Pick, error)

	// Name returns the name of the record source
	Name() string
}

// SourceError represents errors from record source operations
type SourceError struct {
	Source  string // Record source name
	Code    string // Error code (e.g., "malformed_record")
	Message string // Error message
	Err     error  // Underlying error
}

func (e SourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

func (e SourceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeNotFound        = "not_found"
	ErrCodeMalformedRecord = "malformed_record"
	ErrCodeMissingColumn   = "missing_column"
	ErrCodeNetworkError    = "network_error"
	ErrCodeServerError     = "server_error"
)

// NewSourceError creates a new record source error
func NewSourceError(source, code, message string, err error) SourceError {
	return SourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
