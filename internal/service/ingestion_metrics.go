package service

import "time"

// IngestionMetrics tracks counters for a single ingestion sync
type IngestionMetrics struct {
	Bowls       int
	TeamFactors int
	Picks       int
	Warnings    int
	Errors      int
	Duration    time.Duration
}

// NewIngestionMetrics creates a zeroed metrics set
func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{}
}

// Reset zeroes all counters
func (m *IngestionMetrics) Reset() {
	*m = IngestionMetrics{}
}
