package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Scenario is one complete assignment of winners to the undecided bowls.
// Winners[i] is the winning team of undecided bowl i in registry order.
// Scenarios are ephemeral: reconstructed from Index on demand, never stored.
type Scenario struct {
	Index   uint64   `json:"index"`
	Winners []string `json:"winners"`
}

// OutcomeAssignment maps every bowl, decided and undecided, to its winning
// team under one scenario.
type OutcomeAssignment map[string]string

// ScenarioResult is the scored outcome of a single scenario, consumed by the
// output layer as it is produced.
type ScenarioResult struct {
	Index       uint64                     `json:"index"`
	Assignment  OutcomeAssignment          `json:"assignment"`
	Scores      map[string]decimal.Decimal `json:"scores"`
	PoolWinners []string                   `json:"pool_winners"`
	Probability float64                    `json:"probability"`
}

// WinningScore returns the score shared by the scenario's winning bettors, or
// zero when the pool has no bettors.
func (r ScenarioResult) WinningScore() decimal.Decimal {
	if len(r.PoolWinners) == 0 {
		return decimal.Zero
	}
	return r.Scores[r.PoolWinners[0]]
}

// SortedBettors returns the bettor names in the result in stable order.
func (r ScenarioResult) SortedBettors() []string {
	bettors := make([]string, 0, len(r.Scores))
	for bettor := range r.Scores {
		bettors = append(bettors, bettor)
	}
	sort.Strings(bettors)
	return bettors
}
