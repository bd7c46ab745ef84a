package pool

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Resolve returns every bettor whose score equals the maximum, sorted by
// name. Ties are reported as a multi-element set, never broken arbitrarily.
// Empty input yields an empty result.
func Resolve(scores map[string]decimal.Decimal) []string {
	if len(scores) == 0 {
		return nil
	}

	var best decimal.Decimal
	first := true
	for _, score := range scores {
		if first || score.GreaterThan(best) {
			best = score
			first = false
		}
	}

	winners := make([]string, 0, 1)
	for bettor, score := range scores {
		if score.Equal(best) {
			winners = append(winners, bettor)
		}
	}
	sort.Strings(winners)
	return winners
}
