package memfit

import "errors"

// Sentinel errors returned by the Simulator.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScenarioSourceRequired is returned when the scenario source is nil.
	ErrScenarioSourceRequired = errors.New("scenario source is required")

	// ErrNoStrategies is returned when the simulator is configured with an
	// empty strategy set.
	ErrNoStrategies = errors.New("at least one placement strategy is required")
)
