package memfit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/Palmyraa/memfit/internal/fingerprint"
	"github.com/Palmyraa/memfit/internal/hooks"
	"github.com/Palmyraa/memfit/internal/logger"
	"github.com/Palmyraa/memfit/internal/metrics"
	"github.com/Palmyraa/memfit/strategy"
	"github.com/Palmyraa/memfit/types"
)

// Simulator orchestrates strategy runs against a scenario source and builds
// cross-strategy comparisons.
//
// Each run owns a private fresh block table, so a Simulator is safe for
// concurrent use and runs may execute in parallel (Config.Parallel) with
// zero coordination.
type Simulator struct {
	cfg        Config
	src        types.ScenarioSource
	strategies []types.PlacementStrategy
	logger     types.Logger
	metrics    types.MetricsCollector
	hooks      *types.Hooks

	// cache memoizes results keyed by input fingerprint (nil when disabled).
	cache *xsync.Map[uint64, *types.Result]
}

// NewSimulator creates a simulator for the given configuration and scenario
// source.
//
// Parameters:
//   - cfg: Simulator configuration (nil uses DefaultConfig())
//   - src: Scenario source providing block and process sizes
//   - opts: Optional dependencies (WithLogger, WithMetrics, WithHooks, WithStrategies)
//
// Returns:
//   - *Simulator: Initialized simulator
//   - error: ErrScenarioSourceRequired, ErrInvalidConfig, or ErrNoStrategies
//
// Example:
//
//	src := source.NewStatic(memfit.Scenario{
//	    BlockSizes:   []int{100, 500, 200, 300, 600},
//	    ProcessSizes: []int{212, 417, 112, 426},
//	})
//	sim, err := memfit.NewSimulator(nil, src)
func NewSimulator(cfg *Config, src types.ScenarioSource, opts ...Option) (*Simulator, error) {
	if src == nil {
		return nil, ErrScenarioSourceRequired
	}

	var c Config
	if cfg != nil {
		c = *cfg
	} else {
		c = DefaultConfig()
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &simulatorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	strategies := options.strategies
	if strategies == nil {
		names, err := c.strategyNames()
		if err != nil {
			return nil, err
		}
		strategies = make([]types.PlacementStrategy, 0, len(names))
		for _, name := range names {
			s, err := strategy.New(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			strategies = append(strategies, s)
		}
	}
	if len(strategies) == 0 {
		return nil, ErrNoStrategies
	}

	sim := &Simulator{
		cfg:        c,
		src:        src,
		strategies: strategies,
		logger:     options.logger,
		metrics:    options.metrics,
		hooks:      options.hooks,
	}
	if sim.logger == nil {
		sim.logger = logger.NewNop()
	}
	if sim.metrics == nil {
		sim.metrics = metrics.NewNop()
	}
	if sim.hooks == nil {
		sim.hooks = hooks.NewNop()
	}
	if c.CacheResults {
		sim.cache = xsync.NewMap[uint64, *types.Result]()
	}

	return sim, nil
}

// Strategies returns the strategy names this simulator runs, in order.
func (s *Simulator) Strategies() []types.StrategyName {
	names := make([]types.StrategyName, len(s.strategies))
	for i, strat := range s.strategies {
		names[i] = strat.Name()
	}

	return names
}

// Run executes a single strategy against the current scenario.
//
// The strategy does not need to be in the configured set; any built-in name
// is accepted.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Strategy to run
//
// Returns:
//   - *types.Result: Final block state and unallocated processes (read-only)
//   - error: Scenario, input, or strategy resolution failure
func (s *Simulator) Run(ctx context.Context, name types.StrategyName) (*types.Result, error) {
	for _, strat := range s.strategies {
		if strat.Name() == name {
			return s.runOne(ctx, strat)
		}
	}

	strat, err := strategy.New(name)
	if err != nil {
		return nil, err
	}

	return s.runOne(ctx, strat)
}

// RunAll executes every configured strategy against the current scenario
// and returns the results in strategy declaration order.
//
// With Config.Parallel the runs execute in separate goroutines. Runs never
// share mutable state, so both modes produce identical results.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - []*types.Result: One result per strategy, in declaration order
//   - error: First failure(s) encountered; nil results on error
func (s *Simulator) RunAll(ctx context.Context) ([]*types.Result, error) {
	results := make([]*types.Result, len(s.strategies))

	if !s.cfg.Parallel {
		for i, strat := range s.strategies {
			result, err := s.runOne(ctx, strat)
			if err != nil {
				return nil, err
			}
			results[i] = result
		}

		return results, nil
	}

	errs := make([]error, len(s.strategies))
	var wg sync.WaitGroup
	for i, strat := range s.strategies {
		wg.Add(1)
		go func(i int, strat types.PlacementStrategy) {
			defer wg.Done()
			results[i], errs[i] = s.runOne(ctx, strat)
		}(i, strat)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return results, nil
}

// Compare runs every configured strategy and builds the comparison table.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - []types.ComparisonRow: One row per strategy, in declaration order
//   - error: Propagated from RunAll
func (s *Simulator) Compare(ctx context.Context) ([]types.ComparisonRow, error) {
	results, err := s.RunAll(ctx)
	if err != nil {
		return nil, err
	}

	return BuildComparison(results), nil
}

// runOne fetches the scenario, consults the result cache, and executes the
// allocation loop for one strategy.
func (s *Simulator) runOne(ctx context.Context, strat types.PlacementStrategy) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scenario, err := s.src.Scenario(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch scenario: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	name := strat.Name()

	var key uint64
	if s.cache != nil {
		key = fingerprint.Inputs(name, scenario.BlockSizes, scenario.ProcessSizes)
		if cached, ok := s.cache.Load(key); ok {
			s.metrics.RecordCacheLookup(true)
			s.logger.Debug("result cache hit", "strategy", name.String(), "key", key)

			return cached, nil
		}
		s.metrics.RecordCacheLookup(false)
	}

	start := time.Now()
	result, err := runAllocation(ctx, strat, scenario, s.logger, s.metrics, s.hooks)
	if err != nil {
		return nil, err
	}
	duration := time.Since(start)

	m := Summarize(result)
	s.metrics.RecordRunDuration(name.String(), duration.Seconds())
	s.metrics.RecordRunOutcome(name.String(), m.AllocatedCount, m.TotalProcesses)
	s.metrics.RecordFragmentation(name.String(), m.TotalInternalFrag, m.ExternalFrag)
	s.logger.Info("strategy run completed",
		"strategy", name.String(),
		"scenario", scenario.Name,
		"allocated", m.AllocatedCount,
		"total", m.TotalProcesses,
		"internalFrag", m.TotalInternalFrag,
		"externalFrag", m.ExternalFrag,
		"duration", duration)

	if s.cache != nil {
		s.cache.Store(key, result)
	}

	return result, nil
}
