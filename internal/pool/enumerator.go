package pool

import (
	"context"

	"github.com/yourusername/bowl-pool/internal/models"
)

// Hard ceiling on undecided bowls so scenario indices always fit in a uint64.
const maxEnumerableBowls = 62

// Enumerator produces the lazy sequence of all 2^k outcome assignments over k
// undecided bowls. The canonical order is a little-endian binary counter:
// bit i of the scenario index selects the winner of undecided bowl i, with 0
// choosing TeamA and 1 choosing TeamB. This ordering is an external contract;
// downstream output is keyed by scenario index.
type Enumerator struct {
	bowls []models.Bowl
	count uint64
}

// NewEnumerator builds an enumerator over the undecided bowls, failing fast
// with a ScenarioSpaceTooLargeError when the count exceeds maxUndecided.
func NewEnumerator(undecided []models.Bowl, maxUndecided int) (*Enumerator, error) {
	if maxUndecided <= 0 || maxUndecided > maxEnumerableBowls {
		maxUndecided = maxEnumerableBowls
	}
	if len(undecided) > maxUndecided {
		return nil, &models.ScenarioSpaceTooLargeError{
			Undecided: len(undecided),
			Limit:     maxUndecided,
		}
	}

	return &Enumerator{
		bowls: undecided,
		count: uint64(1) << uint(len(undecided)),
	}, nil
}

// Count returns the total number of scenarios, 2^k. k = 0 yields exactly one
// scenario: the fully decided state.
func (e *Enumerator) Count() uint64 {
	return e.count
}

// Bowls returns the undecided bowls in bit order.
func (e *Enumerator) Bowls() []models.Bowl {
	return e.bowls
}

// ScenarioAt reconstructs the scenario for an index. Every scenario is
// independently derivable from its index, which is what makes enumeration
// restartable and partitionable across workers.
func (e *Enumerator) ScenarioAt(index uint64) models.Scenario {
	winners := make([]string, len(e.bowls))
	for i, bowl := range e.bowls {
		if index&(uint64(1)<<uint(i)) == 0 {
			winners[i] = bowl.TeamA
		} else {
			winners[i] = bowl.TeamB
		}
	}
	return models.Scenario{Index: index, Winners: winners}
}

// Each walks every scenario in canonical order, one at a time, without ever
// materializing the full scenario set. fn returning an error stops the walk.
func (e *Enumerator) Each(ctx context.Context, fn func(models.Scenario) error) error {
	for index := uint64(0); index < e.count; index++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(e.ScenarioAt(index)); err != nil {
			return err
		}
	}
	return nil
}
