package models

import "github.com/shopspring/decimal"

// TeamFactor holds the optional scoring multiplier and win probability for a
// team. Either field may be absent in the source data.
type TeamFactor struct {
	Team        string           `json:"team" validate:"required"`
	Multiplier  *decimal.Decimal `json:"multiplier"`
	Probability *float64         `json:"probability"`
	Row         int              `json:"row"`
}

// FactorTable is a per-team lookup of scoring factors.
type FactorTable map[string]TeamFactor

// NewFactorTable builds a lookup from team-factor records. A later record for
// the same team overrides an earlier one.
func NewFactorTable(records []TeamFactor) FactorTable {
	table := make(FactorTable, len(records))
	for _, record := range records {
		table[record.Team] = record
	}
	return table
}

// MultiplierFor returns the scoring multiplier for a team, defaulting to 1
// when no factor is supplied.
func (t FactorTable) MultiplierFor(team string) decimal.Decimal {
	if factor, ok := t[team]; ok && factor.Multiplier != nil {
		return *factor.Multiplier
	}
	return decimal.NewFromInt(1)
}

// ProbabilityFor returns the win probability for a team, defaulting to 1 when
// no factor is supplied so scenario likelihood degrades gracefully.
func (t FactorTable) ProbabilityFor(team string) float64 {
	if factor, ok := t[team]; ok && factor.Probability != nil {
		return *factor.Probability
	}
	return 1.0
}
