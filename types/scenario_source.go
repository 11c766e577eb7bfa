package types

import "context"

// ScenarioSource provides the scenario a simulator runs against.
//
// Sources must be safe for concurrent reads: the simulator may fetch the
// scenario from parallel strategy runs.
type ScenarioSource interface {
	// Scenario returns the current scenario.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//
	// Returns:
	//   - Scenario: The scenario to simulate
	//   - error: wraps ErrScenarioUnavailable when the source cannot provide one
	Scenario(ctx context.Context) (Scenario, error)
}
