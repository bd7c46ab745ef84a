package pool

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/bowl-pool/internal/models"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testBowls() []models.Bowl {
	return []models.Bowl{
		{Name: "Rose Bowl", TeamA: "Ducks", TeamB: "Buckeyes", Decided: true, Winner: "Ducks", Row: 2},
		{Name: "Sugar Bowl", TeamA: "Tigers", TeamB: "Bulldogs", Row: 3},
		{Name: "Orange Bowl", TeamA: "Hurricanes", TeamB: "Wolverines", Row: 4},
	}
}

func TestNewRegistryPartitionsBowls(t *testing.T) {
	registry, err := NewRegistry(testBowls())
	require.NoError(t, err)

	assert.Equal(t, 3, registry.Len())
	require.Len(t, registry.Decided(), 1)
	require.Len(t, registry.Undecided(), 2)
	assert.Equal(t, "Rose Bowl", registry.Decided()[0].Name)
	assert.Equal(t, []string{"Rose Bowl", "Sugar Bowl", "Orange Bowl"}, registry.BowlNames())

	// Undecided order matches input order, which fixes the bit layout
	assert.Equal(t, "Sugar Bowl", registry.Undecided()[0].Name)
	assert.Equal(t, "Orange Bowl", registry.Undecided()[1].Name)
}

func TestNewRegistryRejectsMalformedBowls(t *testing.T) {
	tests := []struct {
		name   string
		bowl   models.Bowl
		reason string
	}{
		{
			name:   "missing name",
			bowl:   models.Bowl{TeamA: "A", TeamB: "B"},
			reason: "missing bowl name",
		},
		{
			name:   "missing contestant",
			bowl:   models.Bowl{Name: "Citrus Bowl", TeamA: "A"},
			reason: "fewer than two contestants",
		},
		{
			name:   "identical contestants",
			bowl:   models.Bowl{Name: "Citrus Bowl", TeamA: "A", TeamB: "A"},
			reason: "not distinct",
		},
		{
			name:   "decided without winner",
			bowl:   models.Bowl{Name: "Citrus Bowl", TeamA: "A", TeamB: "B", Decided: true},
			reason: "decided bowl has no winner",
		},
		{
			name:   "undecided with winner",
			bowl:   models.Bowl{Name: "Citrus Bowl", TeamA: "A", TeamB: "B", Winner: "A"},
			reason: "undecided bowl has winner",
		},
		{
			name:   "winner not a contestant",
			bowl:   models.Bowl{Name: "Citrus Bowl", TeamA: "A", TeamB: "B", Decided: true, Winner: "C"},
			reason: "not a contestant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry([]models.Bowl{tt.bowl})
			require.Error(t, err)

			var malformed *models.MalformedBowlError
			require.ErrorAs(t, err, &malformed)
			assert.Contains(t, malformed.Reason, tt.reason)
		})
	}
}

func TestNewRegistryRejectsDuplicateNames(t *testing.T) {
	_, err := NewRegistry([]models.Bowl{
		{Name: "Rose Bowl", TeamA: "A", TeamB: "B"},
		{Name: "Rose Bowl", TeamA: "C", TeamB: "D"},
	})
	require.Error(t, err)

	var malformed *models.MalformedBowlError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "duplicate")
}

func TestDecidedAssignmentIsFresh(t *testing.T) {
	registry, err := NewRegistry(testBowls())
	require.NoError(t, err)

	first := registry.DecidedAssignment()
	first["Sugar Bowl"] = "Tigers"

	second := registry.DecidedAssignment()
	assert.Equal(t, models.OutcomeAssignment{"Rose Bowl": "Ducks"}, second)
}
