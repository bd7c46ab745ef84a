package pool

import (
	"github.com/shopspring/decimal"
	"github.com/yourusername/bowl-pool/internal/models"
)

// ScoringMode selects how a winning pick's points combine with the team's
// scoring multiplier. The combination rule is configurable because the source
// data does not pin down a single formula.
type ScoringMode string

const (
	// ScoringModeMultiplier scores a winning pick as points * multiplier.
	ScoringModeMultiplier ScoringMode = "multiplier"
	// ScoringModeFlat ignores multipliers and scores points as wagered.
	ScoringModeFlat ScoringMode = "flat"
)

// Valid reports whether the mode is a known scoring mode.
func (m ScoringMode) Valid() bool {
	return m == ScoringModeMultiplier || m == ScoringModeFlat
}

// Score computes a bettor's total over a full outcome assignment. For each
// bowl, a pick matching the assigned winner contributes the wagered points
// scaled per the scoring mode; anything else, including a missing pick,
// contributes zero. The function is pure: no state is shared between bettors
// or scenarios, so calls may run concurrently and in any order.
func Score(picks map[string]models.Pick, assignment models.OutcomeAssignment, factors models.FactorTable, mode ScoringMode) decimal.Decimal {
	total := decimal.Zero
	for bowl, winner := range assignment {
		pick, ok := picks[bowl]
		if !ok || pick.Team != winner {
			continue
		}
		points := decimal.NewFromInt(int64(pick.Points))
		if mode == ScoringModeFlat {
			total = total.Add(points)
			continue
		}
		total = total.Add(points.Mul(factors.MultiplierFor(winner)))
	}
	return total
}
