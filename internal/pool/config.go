package pool

import (
	"fmt"

	"github.com/yourusername/bowl-pool/internal/config"
)

// Config holds engine-level settings for a single run.
type Config struct {
	MaxUndecidedBowls  int
	Workers            int
	ParallelThreshold  uint64
	ScoringMode        ScoringMode
	ProbabilityEnabled bool
	OutputPath         string
}

// DefaultConfig returns engine settings suitable for a typical pool.
func DefaultConfig() Config {
	return Config{
		MaxUndecidedBowls:  20,
		Workers:            1,
		ParallelThreshold:  4096,
		ScoringMode:        ScoringModeMultiplier,
		ProbabilityEnabled: true,
	}
}

// FromConfig converts app config to engine config.
func FromConfig(cfg *config.PoolConfig) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("pool config is required")
	}

	pc := DefaultConfig()
	if cfg.MaxUndecidedBowls > 0 {
		pc.MaxUndecidedBowls = cfg.MaxUndecidedBowls
	}
	if cfg.Workers > 0 {
		pc.Workers = cfg.Workers
	}
	if cfg.ScoringMode != "" {
		pc.ScoringMode = ScoringMode(cfg.ScoringMode)
	}
	pc.ProbabilityEnabled = cfg.ProbabilityEnabled
	pc.OutputPath = cfg.OutputPath

	return pc, pc.Validate()
}

// Validate validates engine config parameters.
func (c Config) Validate() error {
	if c.MaxUndecidedBowls <= 0 || c.MaxUndecidedBowls > maxEnumerableBowls {
		return fmt.Errorf("max undecided bowls must be between 1 and %d", maxEnumerableBowls)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if !c.ScoringMode.Valid() {
		return fmt.Errorf("unknown scoring mode %q", c.ScoringMode)
	}
	return nil
}
