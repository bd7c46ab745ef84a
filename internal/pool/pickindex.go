package pool

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/metrics"
	"github.com/yourusername/bowl-pool/internal/models"
)

// Index groups picks by bettor, then by bowl. It is immutable after
// construction and read-shared across concurrent evaluators.
type Index struct {
	bettors  []string
	picks    map[string]map[string]models.Pick
	warnings []models.DataQualityWarning
}

// NewIndex builds the pick lookup. Duplicate picks for the same bettor and
// bowl are not merged: the first-encountered pick wins and a data-quality
// warning is recorded, so results stay reproducible on malformed input.
func NewIndex(records []models.Pick, logger *logrus.Logger) *Index {
	if logger == nil {
		logger = logrus.New()
	}

	index := &Index{picks: make(map[string]map[string]models.Pick)}

	for _, record := range records {
		byBowl, ok := index.picks[record.Bettor]
		if !ok {
			byBowl = make(map[string]models.Pick)
			index.picks[record.Bettor] = byBowl
			index.bettors = append(index.bettors, record.Bettor)
		}

		if first, dup := byBowl[record.Bowl]; dup {
			index.warn(logger, models.DataQualityWarning{
				Bettor: record.Bettor,
				Bowl:   record.Bowl,
				Row:    record.Row,
				Reason: fmt.Sprintf("duplicate pick, keeping first-encountered %q for %d points", first.Team, first.Points),
			})
			continue
		}

		if record.Points < 1 || record.Points > 10 {
			index.warn(logger, models.DataQualityWarning{
				Bettor: record.Bettor,
				Bowl:   record.Bowl,
				Row:    record.Row,
				Reason: fmt.Sprintf("point value %d outside 1-10", record.Points),
			})
		}

		byBowl[record.Bowl] = record
	}

	return index
}

func (i *Index) warn(logger *logrus.Logger, warning models.DataQualityWarning) {
	i.warnings = append(i.warnings, warning)
	metrics.RecordDataQualityWarning()
	logger.WithFields(logrus.Fields{
		"bettor": warning.Bettor,
		"bowl":   warning.Bowl,
		"row":    warning.Row,
	}).Warn(warning.Reason)
}

// Lookup returns a bettor's pick for a bowl, if any.
func (i *Index) Lookup(bettor, bowl string) (models.Pick, bool) {
	pick, ok := i.picks[bettor][bowl]
	return pick, ok
}

// Bettors returns bettor names in first-encountered input order.
func (i *Index) Bettors() []string {
	return i.bettors
}

// PicksFor returns a bettor's per-bowl picks.
func (i *Index) PicksFor(bettor string) map[string]models.Pick {
	return i.picks[bettor]
}

// Warnings returns the data-quality warnings recorded during construction.
func (i *Index) Warnings() []models.DataQualityWarning {
	return i.warnings
}
