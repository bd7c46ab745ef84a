package pool

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bowl-pool/internal/models"
)

func twoBowlEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()

	registry, err := NewRegistry([]models.Bowl{
		{Name: "Bowl A", TeamA: "A1", TeamB: "A2"},
		{Name: "Bowl B", TeamA: "B1", TeamB: "B2"},
	})
	require.NoError(t, err)

	index := NewIndex([]models.Pick{
		{Bettor: "X", Bowl: "Bowl A", Team: "A1", Points: 5},
		{Bettor: "X", Bowl: "Bowl B", Team: "B1", Points: 3},
		{Bettor: "Y", Bowl: "Bowl A", Team: "A2", Points: 4},
		{Bettor: "Y", Bowl: "Bowl B", Team: "B1", Points: 6},
	}, newTestLogger())

	engine, err := NewEngine(cfg, registry, index, models.FactorTable{}, newTestLogger())
	require.NoError(t, err)
	return engine
}

func TestEngineRunTwoBowlExample(t *testing.T) {
	engine := twoBowlEngine(t, DefaultConfig())

	var results []models.ScenarioResult
	summary, err := engine.Run(context.Background(), func(result models.ScenarioResult) error {
		results = append(results, result)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, uint64(4), summary.Scenarios)

	expected := []struct {
		x, y    int64
		winners []string
	}{
		{8, 6, []string{"X"}},  // A1, B1
		{3, 10, []string{"Y"}}, // A2, B1
		{5, 0, []string{"X"}},  // A1, B2
		{0, 4, []string{"Y"}},  // A2, B2
	}

	for i, want := range expected {
		result := results[i]
		assert.Equal(t, uint64(i), result.Index)
		assert.True(t, result.Scores["X"].Equal(decimal.NewFromInt(want.x)),
			"scenario %d: X scored %s", i, result.Scores["X"])
		assert.True(t, result.Scores["Y"].Equal(decimal.NewFromInt(want.y)),
			"scenario %d: Y scored %s", i, result.Scores["Y"])
		assert.Equal(t, want.winners, result.PoolWinners, "scenario %d", i)
	}

	assert.Equal(t, map[string]uint64{"X": 2, "Y": 2}, summary.ScenariosWon)
	// No probability data: every scenario weighs 1
	assert.InDelta(t, 4.0, summary.TotalProbability, 1e-12)
}

func TestEngineRunIdenticalPicksAlwaysTie(t *testing.T) {
	registry, err := NewRegistry([]models.Bowl{
		{Name: "Bowl A", TeamA: "A1", TeamB: "A2"},
		{Name: "Bowl B", TeamA: "B1", TeamB: "B2"},
	})
	require.NoError(t, err)

	index := NewIndex([]models.Pick{
		{Bettor: "X", Bowl: "Bowl A", Team: "A1", Points: 5},
		{Bettor: "X", Bowl: "Bowl B", Team: "B1", Points: 3},
		{Bettor: "Y", Bowl: "Bowl A", Team: "A1", Points: 5},
		{Bettor: "Y", Bowl: "Bowl B", Team: "B1", Points: 3},
	}, newTestLogger())

	engine, err := NewEngine(DefaultConfig(), registry, index, models.FactorTable{}, newTestLogger())
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), func(result models.ScenarioResult) error {
		assert.Equal(t, []string{"X", "Y"}, result.PoolWinners)
		return nil
	})
	require.NoError(t, err)
}

func TestEngineRunFullyDecided(t *testing.T) {
	registry, err := NewRegistry([]models.Bowl{
		{Name: "Bowl A", TeamA: "A1", TeamB: "A2", Decided: true, Winner: "A1"},
	})
	require.NoError(t, err)

	index := NewIndex([]models.Pick{
		{Bettor: "X", Bowl: "Bowl A", Team: "A1", Points: 7},
	}, newTestLogger())

	engine, err := NewEngine(DefaultConfig(), registry, index, models.FactorTable{}, newTestLogger())
	require.NoError(t, err)

	var results []models.ScenarioResult
	summary, err := engine.Run(context.Background(), func(result models.ScenarioResult) error {
		results = append(results, result)
		return nil
	})
	require.NoError(t, err)

	// k = 0 yields exactly one scenario: the decided state itself
	require.Len(t, results, 1)
	assert.Equal(t, uint64(1), summary.Scenarios)
	assert.True(t, results[0].Scores["X"].Equal(decimal.NewFromInt(7)))
	assert.Equal(t, models.OutcomeAssignment{"Bowl A": "A1"}, results[0].Assignment)
}

func TestEngineRunProbabilityWeighting(t *testing.T) {
	registry, err := NewRegistry([]models.Bowl{
		{Name: "Bowl A", TeamA: "A1", TeamB: "A2"},
	})
	require.NoError(t, err)

	index := NewIndex([]models.Pick{
		{Bettor: "X", Bowl: "Bowl A", Team: "A1", Points: 5},
		{Bettor: "Y", Bowl: "Bowl A", Team: "A2", Points: 5},
	}, newTestLogger())

	factors := models.NewFactorTable([]models.TeamFactor{
		{Team: "A1", Probability: probPtr(0.7)},
		{Team: "A2", Probability: probPtr(0.3)},
	})

	engine, err := NewEngine(DefaultConfig(), registry, index, factors, newTestLogger())
	require.NoError(t, err)

	summary, err := engine.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.7, summary.WinLikelihood["X"], 1e-12)
	assert.InDelta(t, 0.3, summary.WinLikelihood["Y"], 1e-12)
	assert.InDelta(t, 1.0, summary.TotalProbability, 1e-12)
}

func TestEngineParallelMatchesSequential(t *testing.T) {
	sequential := twoBowlEngine(t, DefaultConfig())

	parallelCfg := DefaultConfig()
	parallelCfg.Workers = 3
	parallelCfg.ParallelThreshold = 1
	parallel := twoBowlEngine(t, parallelCfg)

	collect := func(engine *Engine) []models.ScenarioResult {
		var results []models.ScenarioResult
		_, err := engine.Run(context.Background(), func(result models.ScenarioResult) error {
			results = append(results, result)
			return nil
		})
		require.NoError(t, err)
		return results
	}

	seqResults := collect(sequential)
	parResults := collect(parallel)

	require.Len(t, parResults, len(seqResults))
	for i := range seqResults {
		assert.Equal(t, seqResults[i].Index, parResults[i].Index)
		assert.Equal(t, seqResults[i].PoolWinners, parResults[i].PoolWinners)
		assert.Equal(t, seqResults[i].Assignment, parResults[i].Assignment)
	}
}

func TestEngineRunScenarioSpaceGuard(t *testing.T) {
	bowls := make([]models.Bowl, 3)
	teams := []string{"A", "B", "C"}
	for i := range bowls {
		bowls[i] = models.Bowl{Name: "Bowl " + teams[i], TeamA: teams[i] + "1", TeamB: teams[i] + "2"}
	}
	registry, err := NewRegistry(bowls)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.MaxUndecidedBowls = 2

	engine, err := NewEngine(cfg, registry, NewIndex(nil, newTestLogger()), nil, newTestLogger())
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), nil)
	var tooLarge *models.ScenarioSpaceTooLargeError
	require.ErrorAs(t, err, &tooLarge)
}

func TestEngineEmitErrorAbortsRun(t *testing.T) {
	engine := twoBowlEngine(t, DefaultConfig())

	calls := 0
	_, err := engine.Run(context.Background(), func(models.ScenarioResult) error {
		calls++
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, calls)
}
