package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bowl-pool/internal/models"
)

func TestNewIndexGroupsPicks(t *testing.T) {
	index := NewIndex([]models.Pick{
		{Bettor: "Yvonne", Bowl: "Sugar Bowl", Team: "Tigers", Points: 4, Row: 2},
		{Bettor: "Xavier", Bowl: "Sugar Bowl", Team: "Tigers", Points: 5, Row: 3},
		{Bettor: "Xavier", Bowl: "Orange Bowl", Team: "Hurricanes", Points: 3, Row: 4},
	}, newTestLogger())

	// First-encountered order, not alphabetical
	assert.Equal(t, []string{"Yvonne", "Xavier"}, index.Bettors())

	pick, ok := index.Lookup("Xavier", "Orange Bowl")
	require.True(t, ok)
	assert.Equal(t, "Hurricanes", pick.Team)
	assert.Equal(t, 3, pick.Points)

	_, ok = index.Lookup("Yvonne", "Orange Bowl")
	assert.False(t, ok)

	assert.Empty(t, index.Warnings())
}

func TestNewIndexKeepsFirstDuplicate(t *testing.T) {
	index := NewIndex([]models.Pick{
		{Bettor: "Xavier", Bowl: "Sugar Bowl", Team: "Tigers", Points: 5, Row: 2},
		{Bettor: "Xavier", Bowl: "Sugar Bowl", Team: "Bulldogs", Points: 7, Row: 3},
	}, newTestLogger())

	pick, ok := index.Lookup("Xavier", "Sugar Bowl")
	require.True(t, ok)
	assert.Equal(t, "Tigers", pick.Team)
	assert.Equal(t, 5, pick.Points)

	require.Len(t, index.Warnings(), 1)
	warning := index.Warnings()[0]
	assert.Equal(t, "Xavier", warning.Bettor)
	assert.Equal(t, 3, warning.Row)
	assert.Contains(t, warning.Reason, "duplicate pick")
}

func TestNewIndexWarnsOnOutOfRangePoints(t *testing.T) {
	index := NewIndex([]models.Pick{
		{Bettor: "Xavier", Bowl: "Sugar Bowl", Team: "Tigers", Points: 11, Row: 2},
		{Bettor: "Xavier", Bowl: "Orange Bowl", Team: "Hurricanes", Points: 0, Row: 3},
	}, newTestLogger())

	// Out-of-range picks still score; the warning is advisory
	_, ok := index.Lookup("Xavier", "Sugar Bowl")
	assert.True(t, ok)
	assert.Len(t, index.Warnings(), 2)
}
