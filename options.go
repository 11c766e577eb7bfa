package memfit

import "github.com/Palmyraa/memfit/types"

// Option configures a Simulator with optional dependencies.
type Option func(*simulatorOptions)

// simulatorOptions holds optional Simulator configuration.
type simulatorOptions struct {
	logger     types.Logger
	metrics    types.MetricsCollector
	hooks      *types.Hooks
	strategies []types.PlacementStrategy
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSimulator
//
// Example:
//
//	sim, err := memfit.NewSimulator(&cfg, src, memfit.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger types.Logger) Option {
	return func(o *simulatorOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSimulator
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "memfit")
//	sim, err := memfit.NewSimulator(&cfg, src, memfit.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *simulatorOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets lifecycle event hooks.
//
// Hooks run synchronously inside the run loop; errors are logged and never
// fail the run.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewSimulator
func WithHooks(hooks *types.Hooks) Option {
	return func(o *simulatorOptions) {
		o.hooks = hooks
	}
}

// WithStrategies overrides the configured strategy set with explicit
// strategy instances, preserving the given order in results and comparison
// tables. Takes precedence over Config.Strategies.
//
// Parameters:
//   - strategies: Placement strategies to run
//
// Returns:
//   - Option: Functional option for NewSimulator
//
// Example:
//
//	sim, err := memfit.NewSimulator(&cfg, src,
//	    memfit.WithStrategies(strategy.NewBestFit(), strategy.NewFirstFit()))
func WithStrategies(strategies ...types.PlacementStrategy) Option {
	return func(o *simulatorOptions) {
		o.strategies = strategies
	}
}
