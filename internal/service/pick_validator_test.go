package service

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bowl-pool/internal/models"
	"github.com/yourusername/bowl-pool/internal/pool"
)

func newTestValidator() *PickValidator {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewPickValidator(logger)
}

func fullSheet(bettor string) []models.Pick {
	picks := make([]models.Pick, 0, 10)
	bowls := []string{"Rose", "Sugar", "Orange", "Cotton", "Peach", "Fiesta", "Citrus", "Gator", "Sun", "Alamo"}
	for i, bowl := range bowls {
		picks = append(picks, models.Pick{
			Bettor: bettor,
			Bowl:   bowl + " Bowl",
			Team:   bowl + " Home",
			Points: i + 1,
			Row:    i + 2,
		})
	}
	return picks
}

func TestValidatePicksCleanSheet(t *testing.T) {
	warnings := newTestValidator().ValidatePicks(fullSheet("Xavier"), nil)
	assert.Empty(t, warnings)
}

func TestValidatePicksWrongCount(t *testing.T) {
	picks := fullSheet("Xavier")[:7]
	warnings := newTestValidator().ValidatePicks(picks, nil)

	require.Len(t, warnings, 1)
	assert.Equal(t, "Xavier", warnings[0].Bettor)
	assert.Contains(t, warnings[0].Reason, "expected 10 picks, found 7")
}

func TestValidatePicksRepeatedPointValue(t *testing.T) {
	picks := fullSheet("Xavier")
	picks[4].Points = 3 // collides with pick index 2

	warnings := newTestValidator().ValidatePicks(picks, nil)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "point value 3 wagered more than once")
}

func TestValidatePicksRepeatedBowl(t *testing.T) {
	picks := fullSheet("Xavier")
	picks[5].Bowl = picks[0].Bowl

	warnings := newTestValidator().ValidatePicks(picks, nil)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "bowl picked more than once")
}

func TestValidatePicksOutOfRangePoints(t *testing.T) {
	picks := fullSheet("Xavier")
	picks[9].Points = 12

	warnings := newTestValidator().ValidatePicks(picks, nil)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "outside expected range 1-10")
}

func TestValidatePicksAgainstRegistry(t *testing.T) {
	registry, err := pool.NewRegistry([]models.Bowl{
		{Name: "Rose Bowl", TeamA: "Ducks", TeamB: "Buckeyes"},
	})
	require.NoError(t, err)

	picks := []models.Pick{
		{Bettor: "Xavier", Bowl: "Rose Bowl", Team: "Ducks", Points: 1, Row: 2},
		{Bettor: "Xavier", Bowl: "Ghost Bowl", Team: "Ducks", Points: 2, Row: 3},
		{Bettor: "Xavier", Bowl: "Rose Bowl", Team: "Wolverines", Points: 3, Row: 4},
	}

	warnings := newTestValidator().ValidatePicks(picks, registry)

	reasons := make([]string, 0, len(warnings))
	for _, warning := range warnings {
		reasons = append(reasons, warning.Reason)
	}

	joined := strings.Join(reasons, "; ")
	assert.Contains(t, joined, "pick references unknown bowl")
	assert.Contains(t, joined, "is not a contestant")
	assert.Contains(t, joined, "bowl picked more than once")
	assert.Contains(t, joined, "expected 10 picks")
}

func TestValidatePicksMultipleBettors(t *testing.T) {
	picks := append(fullSheet("Xavier"), fullSheet("Yvonne")...)
	warnings := newTestValidator().ValidatePicks(picks, nil)
	assert.Empty(t, warnings)
}
