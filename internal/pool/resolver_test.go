package pool

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolveSingleWinner(t *testing.T) {
	winners := Resolve(map[string]decimal.Decimal{
		"Xavier": decimal.NewFromInt(8),
		"Yvonne": decimal.NewFromInt(6),
	})
	assert.Equal(t, []string{"Xavier"}, winners)
}

func TestResolveTieReportsAllWinnersSorted(t *testing.T) {
	winners := Resolve(map[string]decimal.Decimal{
		"Yvonne": decimal.NewFromInt(7),
		"Xavier": decimal.NewFromInt(7),
		"Zelda":  decimal.NewFromInt(2),
	})
	assert.Equal(t, []string{"Xavier", "Yvonne"}, winners)
}

func TestResolveAllZeroScores(t *testing.T) {
	// Every bettor losing every pick is still a valid maximum
	winners := Resolve(map[string]decimal.Decimal{
		"Xavier": decimal.Zero,
		"Yvonne": decimal.Zero,
	})
	assert.Equal(t, []string{"Xavier", "Yvonne"}, winners)
}

func TestResolveEquivalentDecimalsTie(t *testing.T) {
	winners := Resolve(map[string]decimal.Decimal{
		"Xavier": decimal.RequireFromString("7.50"),
		"Yvonne": decimal.RequireFromString("7.5"),
	})
	assert.Equal(t, []string{"Xavier", "Yvonne"}, winners)
}

func TestResolveEmpty(t *testing.T) {
	assert.Empty(t, Resolve(nil))
}
