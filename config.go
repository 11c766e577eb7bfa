package memfit

import (
	"fmt"

	"github.com/Palmyraa/memfit/types"
)

// Config is the configuration for the Simulator.
//
// The zero value runs all built-in strategies serially with caching
// disabled; use DefaultConfig() and override fields as needed.
type Config struct {
	// Strategies lists the placement strategies to run, by name
	// ("First Fit", "best-fit", ...). An empty list selects the full
	// built-in set in canonical order: First Fit, Best Fit, Worst Fit.
	//
	// Comparison tables always follow this declaration order.
	Strategies []string `yaml:"strategies"`

	// Parallel runs the per-strategy simulations in separate goroutines.
	// Runs never share a mutable block table, so correctness does not
	// depend on this; it only affects wall time for large scenarios.
	Parallel bool `yaml:"parallel"`

	// CacheResults memoizes run results keyed by a fingerprint of the
	// strategy and input sizes. Safe because runs are deterministic.
	// Cached results are shared; treat returned results as read-only.
	CacheResults bool `yaml:"cacheResults"`
}

// DefaultConfig returns the default simulator configuration: all built-in
// strategies, serial execution, result caching enabled.
func DefaultConfig() Config {
	return Config{
		Strategies:   nil, // full built-in set
		Parallel:     false,
		CacheResults: true,
	}
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: wraps ErrInvalidConfig when a strategy name is unknown, nil if valid
func (cfg *Config) Validate() error {
	for _, name := range cfg.Strategies {
		if _, err := types.ParseStrategyName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// strategyNames resolves the configured strategy list, defaulting to the
// full built-in set in canonical order.
func (cfg *Config) strategyNames() ([]types.StrategyName, error) {
	if len(cfg.Strategies) == 0 {
		return []types.StrategyName{
			types.StrategyFirstFit,
			types.StrategyBestFit,
			types.StrategyWorstFit,
		}, nil
	}

	names := make([]types.StrategyName, 0, len(cfg.Strategies))
	for _, s := range cfg.Strategies {
		name, err := types.ParseStrategyName(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		names = append(names, name)
	}

	return names, nil
}
