package pool

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bowl-pool/internal/models"
)

func TestResultWriterTSV(t *testing.T) {
	registry, err := NewRegistry([]models.Bowl{
		{Name: "Rose Bowl", TeamA: "Ducks", TeamB: "Buckeyes", Decided: true, Winner: "Ducks"},
		{Name: "Sugar Bowl", TeamA: "Tigers", TeamB: "Bulldogs"},
	})
	require.NoError(t, err)

	var out strings.Builder
	writer := NewTSVWriter(&out, registry)
	require.NoError(t, writer.WriteHeader())

	result := models.ScenarioResult{
		Index: 0,
		Assignment: models.OutcomeAssignment{
			"Rose Bowl":  "Ducks",
			"Sugar Bowl": "Tigers",
		},
		Scores: map[string]decimal.Decimal{
			"Xavier": decimal.RequireFromString("7.5"),
		},
		PoolWinners: []string{"Xavier"},
		Probability: 0.5,
	}
	require.NoError(t, writer.Write(result))
	require.NoError(t, writer.Flush())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "scenario\twinners\twinning_score\tprobability\tRose Bowl\tSugar Bowl", lines[0])
	assert.Equal(t, "0\tXavier\t7.5\t0.5\tDucks\tTigers", lines[1])
}

func TestResultWriterCSVTieWinners(t *testing.T) {
	registry, err := NewRegistry([]models.Bowl{
		{Name: "Sugar Bowl", TeamA: "Tigers", TeamB: "Bulldogs"},
	})
	require.NoError(t, err)

	var out strings.Builder
	writer := NewCSVWriter(&out, registry)

	result := models.ScenarioResult{
		Index:      1,
		Assignment: models.OutcomeAssignment{"Sugar Bowl": "Bulldogs"},
		Scores: map[string]decimal.Decimal{
			"Xavier": decimal.NewFromInt(4),
			"Yvonne": decimal.NewFromInt(4),
		},
		PoolWinners: []string{"Xavier", "Yvonne"},
		Probability: 1,
	}
	require.NoError(t, writer.Write(result))
	require.NoError(t, writer.Flush())

	// Tied winners are joined in one quoted cell
	assert.Equal(t, "1,\"Xavier, Yvonne\",4,1,Bulldogs\n", out.String())
}

func TestGenerateConsoleReport(t *testing.T) {
	summary := Summary{
		Scenarios:        4,
		UndecidedBowls:   2,
		Bettors:          2,
		ScenariosWon:     map[string]uint64{"Xavier": 3, "Yvonne": 1},
		WinLikelihood:    map[string]float64{"Xavier": 3, "Yvonne": 1},
		TotalProbability: 4,
	}

	report := GenerateConsoleReport(summary)
	assert.Contains(t, report, "Scenarios: 4 (2 undecided bowls)")
	assert.Contains(t, report, "Xavier: wins 3/4 scenarios")
	assert.Contains(t, report, "75.00%")

	// Highest likelihood listed first
	assert.Less(t, strings.Index(report, "Xavier"), strings.Index(report, "Yvonne"))
}
