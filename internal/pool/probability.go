package pool

import (
	"github.com/yourusername/bowl-pool/internal/models"
)

// ScenarioProbability is the product of the assigned winners' win
// probabilities over the undecided bowls only. Decided bowls are certain and
// contribute a factor of 1, as does any team with no probability data, so the
// likelihood calculation degrades gracefully instead of failing. The value is
// advisory: the source data need not have contestant probabilities summing
// to 1.
func ScenarioProbability(scenario models.Scenario, factors models.FactorTable) float64 {
	probability := 1.0
	for _, winner := range scenario.Winners {
		probability *= factors.ProbabilityFor(winner)
	}
	return probability
}

// LikelihoodAccumulator folds scenario results into per-bettor win
// likelihoods: for each bettor, the sum of scenario probabilities in which
// that bettor is among the winners. It carries no state between scenarios
// beyond the running accumulators.
type LikelihoodAccumulator struct {
	wins      map[string]uint64
	totals    map[string]float64
	scenarios uint64
	mass      float64
}

// NewLikelihoodAccumulator creates an empty accumulator.
func NewLikelihoodAccumulator() *LikelihoodAccumulator {
	return &LikelihoodAccumulator{
		wins:   make(map[string]uint64),
		totals: make(map[string]float64),
	}
}

// Observe folds one scenario result into the accumulator.
func (a *LikelihoodAccumulator) Observe(result models.ScenarioResult) {
	a.scenarios++
	a.mass += result.Probability
	for _, bettor := range result.PoolWinners {
		a.wins[bettor]++
		a.totals[bettor] += result.Probability
	}
}

// Scenarios returns the number of results observed.
func (a *LikelihoodAccumulator) Scenarios() uint64 {
	return a.scenarios
}

// TotalProbability returns the accumulated probability mass across all
// observed scenarios.
func (a *LikelihoodAccumulator) TotalProbability() float64 {
	return a.mass
}

// ScenariosWon returns, per bettor, the count of scenarios in which the
// bettor was among the winners. Tied scenarios count fully for every winner.
func (a *LikelihoodAccumulator) ScenariosWon() map[string]uint64 {
	return a.wins
}

// WinLikelihood returns each bettor's summed probability of finishing first.
func (a *LikelihoodAccumulator) WinLikelihood() map[string]float64 {
	return a.totals
}
