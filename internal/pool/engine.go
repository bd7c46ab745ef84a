package pool

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/metrics"
	"github.com/yourusername/bowl-pool/internal/models"
)

// Engine orchestrates a scenario run: enumerate outcomes, score bettors,
// resolve winners, accumulate likelihoods. The registry, index and factor
// table are read-only after construction and shared across workers.
type Engine struct {
	config   Config
	registry *Registry
	index    *Index
	factors  models.FactorTable
	logger   *logrus.Logger
	runID    uuid.UUID
}

// Summary is the per-run aggregate produced after full enumeration.
type Summary struct {
	RunID            uuid.UUID          `json:"run_id"`
	Scenarios        uint64             `json:"scenarios"`
	UndecidedBowls   int                `json:"undecided_bowls"`
	Bettors          int                `json:"bettors"`
	ScenariosWon     map[string]uint64  `json:"scenarios_won"`
	WinLikelihood    map[string]float64 `json:"win_likelihood"`
	TotalProbability float64            `json:"total_probability"`
	Warnings         int                `json:"warnings"`
	Duration         time.Duration      `json:"duration"`
}

// NewEngine creates a new scenario engine.
func NewEngine(cfg Config, registry *Registry, index *Index, factors models.FactorTable, logger *logrus.Logger) (*Engine, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if index == nil {
		return nil, fmt.Errorf("pick index is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	if factors == nil {
		factors = models.FactorTable{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		config:   cfg,
		registry: registry,
		index:    index,
		factors:  factors,
		logger:   logger,
		runID:    uuid.New(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Logger returns the engine logger.
func (e *Engine) Logger() *logrus.Logger {
	return e.logger
}

// Registry returns the bowl registry backing this run.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// RunID returns the identifier assigned to this engine's runs.
func (e *Engine) RunID() uuid.UUID {
	return e.runID
}

// Run enumerates every scenario in canonical order, invoking emit once per
// ScenarioResult. Results arrive in scenario-index order even when evaluation
// is parallelized. emit returning an error aborts the run.
func (e *Engine) Run(ctx context.Context, emit func(models.ScenarioResult) error) (Summary, error) {
	enumerator, err := NewEnumerator(e.registry.Undecided(), e.config.MaxUndecidedBowls)
	if err != nil {
		return Summary{}, err
	}
	if emit == nil {
		emit = func(models.ScenarioResult) error { return nil }
	}

	start := time.Now()
	metrics.UpdateUndecidedBowls(float64(len(e.registry.Undecided())))
	metrics.UpdateBettors(float64(len(e.index.Bettors())))
	e.logger.WithFields(logrus.Fields{
		"run_id":    e.runID,
		"bowls":     e.registry.Len(),
		"undecided": len(e.registry.Undecided()),
		"bettors":   len(e.index.Bettors()),
		"scenarios": enumerator.Count(),
	}).Info("Starting scenario run")

	accumulator := NewLikelihoodAccumulator()
	observe := func(result models.ScenarioResult) error {
		accumulator.Observe(result)
		metrics.RecordScenarioEnumerated()
		return emit(result)
	}

	if e.config.Workers > 1 && enumerator.Count() >= e.config.ParallelThreshold {
		err = e.runParallel(ctx, enumerator, observe)
	} else {
		err = enumerator.Each(ctx, func(scenario models.Scenario) error {
			return observe(e.evaluate(scenario))
		})
	}
	if err != nil {
		return Summary{}, err
	}

	duration := time.Since(start)
	metrics.RecordEnumerationDuration(duration.Seconds())
	e.logger.WithFields(logrus.Fields{
		"run_id":    e.runID,
		"scenarios": accumulator.Scenarios(),
		"duration":  duration,
	}).Info("Scenario run complete")

	return Summary{
		RunID:            e.runID,
		Scenarios:        accumulator.Scenarios(),
		UndecidedBowls:   len(e.registry.Undecided()),
		Bettors:          len(e.index.Bettors()),
		ScenariosWon:     accumulator.ScenariosWon(),
		WinLikelihood:    accumulator.WinLikelihood(),
		TotalProbability: accumulator.TotalProbability(),
		Warnings:         len(e.index.Warnings()),
		Duration:         duration,
	}, nil
}

// evaluate scores one scenario. Pure with respect to engine state: it only
// reads the shared registry, index and factor table.
func (e *Engine) evaluate(scenario models.Scenario) models.ScenarioResult {
	assignment := e.registry.DecidedAssignment()
	for i, bowl := range e.registry.Undecided() {
		assignment[bowl.Name] = scenario.Winners[i]
	}

	scores := make(map[string]decimal.Decimal, len(e.index.Bettors()))
	for _, bettor := range e.index.Bettors() {
		scores[bettor] = Score(e.index.PicksFor(bettor), assignment, e.factors, e.config.ScoringMode)
	}

	result := models.ScenarioResult{
		Index:       scenario.Index,
		Assignment:  assignment,
		Scores:      scores,
		PoolWinners: Resolve(scores),
		Probability: 1.0,
	}
	if e.config.ProbabilityEnabled {
		result.Probability = ScenarioProbability(scenario, e.factors)
	}
	return result
}

// runParallel partitions scenario indices across workers. Worker w evaluates
// indices w, w+N, w+2N, ... in ascending order onto its own channel, so
// reading the channels round-robin resequences results into canonical order
// before emission.
func (e *Engine) runParallel(ctx context.Context, enumerator *Enumerator, emit func(models.ScenarioResult) error) error {
	workers := e.config.Workers
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	outputs := make([]chan models.ScenarioResult, workers)
	for w := range outputs {
		outputs[w] = make(chan models.ScenarioResult, 64)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			defer close(outputs[worker])
			for index := uint64(worker); index < enumerator.Count(); index += uint64(workers) {
				result := e.evaluate(enumerator.ScenarioAt(index))
				select {
				case outputs[worker] <- result:
				case <-ctx.Done():
					return
				}
			}
		}(w)
	}

	var runErr error
	for index := uint64(0); index < enumerator.Count(); index++ {
		result, ok := <-outputs[index%uint64(workers)]
		if !ok {
			runErr = ctx.Err()
			break
		}
		if err := emit(result); err != nil {
			runErr = err
			break
		}
	}

	cancel()
	wg.Wait()
	return runErr
}
