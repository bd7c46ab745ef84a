// Package pool implements the scenario engine for a bowl pick-'em pool:
// outcome enumeration, per-bettor scoring, winner resolution and probability
// aggregation over partially decided game state.
package pool

import (
	"fmt"

	"github.com/yourusername/bowl-pool/internal/models"
)

// Registry partitions bowl records into decided and undecided sets. Both
// sequences preserve input order so enumeration indices are reproducible.
// A Registry is immutable after construction and safe to share across
// concurrent evaluators.
type Registry struct {
	decided   []models.Bowl
	undecided []models.Bowl
	byName    map[string]models.Bowl
	order     []string
}

// NewRegistry validates and partitions bowl records. It fails with a
// MalformedBowlError on the first structurally invalid record.
func NewRegistry(records []models.Bowl) (*Registry, error) {
	registry := &Registry{
		byName: make(map[string]models.Bowl, len(records)),
		order:  make([]string, 0, len(records)),
	}

	for _, record := range records {
		if err := validateBowl(&record); err != nil {
			return nil, err
		}
		if _, exists := registry.byName[record.Name]; exists {
			return nil, &models.MalformedBowlError{
				Bowl:   record.Name,
				Row:    record.Row,
				Reason: "duplicate bowl name",
			}
		}

		registry.byName[record.Name] = record
		registry.order = append(registry.order, record.Name)
		if record.Decided {
			registry.decided = append(registry.decided, record)
		} else {
			registry.undecided = append(registry.undecided, record)
		}
	}

	return registry, nil
}

func validateBowl(bowl *models.Bowl) error {
	fail := func(reason string) error {
		return &models.MalformedBowlError{Bowl: bowl.Name, Row: bowl.Row, Reason: reason}
	}

	if bowl.Name == "" {
		return fail("missing bowl name")
	}
	if bowl.TeamA == "" || bowl.TeamB == "" {
		return fail("fewer than two contestants")
	}
	if bowl.TeamA == bowl.TeamB {
		return fail(fmt.Sprintf("contestants are not distinct (%q)", bowl.TeamA))
	}
	if bowl.Decided && bowl.Winner == "" {
		return fail("decided bowl has no winner")
	}
	if !bowl.Decided && bowl.Winner != "" {
		return fail(fmt.Sprintf("undecided bowl has winner %q", bowl.Winner))
	}
	if bowl.Winner != "" && !bowl.HasContestant(bowl.Winner) {
		return fail(fmt.Sprintf("winner %q is not a contestant", bowl.Winner))
	}
	return nil
}

// Decided returns the decided bowls in input order.
func (r *Registry) Decided() []models.Bowl {
	return r.decided
}

// Undecided returns the undecided bowls in input order. Index i here is the
// bit position used by the enumerator.
func (r *Registry) Undecided() []models.Bowl {
	return r.undecided
}

// Bowl looks up a bowl by name.
func (r *Registry) Bowl(name string) (models.Bowl, bool) {
	bowl, ok := r.byName[name]
	return bowl, ok
}

// BowlNames returns every bowl name in input order, decided and undecided.
func (r *Registry) BowlNames() []string {
	return r.order
}

// Len returns the total number of bowls.
func (r *Registry) Len() int {
	return len(r.order)
}

// DecidedAssignment returns the fixed winner mapping for decided bowls. The
// returned map is freshly allocated on each call.
func (r *Registry) DecidedAssignment() models.OutcomeAssignment {
	assignment := make(models.OutcomeAssignment, len(r.decided))
	for _, bowl := range r.decided {
		assignment[bowl.Name] = bowl.Winner
	}
	return assignment
}
