package source

import (
	"context"
	"sync"

	"github.com/Palmyraa/memfit/types"
)

// Static implements a scenario source with a fixed in-memory scenario.
type Static struct {
	mu       sync.RWMutex
	scenario types.Scenario
}

var _ types.ScenarioSource = (*Static)(nil)

// NewStatic creates a new static scenario source.
//
// The source returns a fixed scenario until Update is called. Useful for
// tests and for programs whose inputs are known at startup.
//
// Parameters:
//   - scenario: The scenario to serve
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(types.Scenario{
//	    BlockSizes:   []int{100, 500, 200, 300, 600},
//	    ProcessSizes: []int{212, 417, 112, 426},
//	})
//	sim, err := memfit.NewSimulator(nil, src)
func NewStatic(scenario types.Scenario) *Static {
	return &Static{scenario: copyScenario(scenario)}
}

// Scenario returns a copy of the current scenario.
//
// Returns:
//   - types.Scenario: The current scenario
//   - error: Always nil (never fails)
func (s *Static) Scenario(_ context.Context) (types.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyScenario(s.scenario), nil
}

// Update replaces the served scenario.
//
// Subsequent runs see the new scenario; runs already in flight keep the
// copy they fetched.
//
// Parameters:
//   - scenario: New scenario to serve
func (s *Static) Update(scenario types.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenario = copyScenario(scenario)
}

// copyScenario deep-copies the size slices so callers cannot mutate the
// source's state (or a run's input) through shared backing arrays.
func copyScenario(in types.Scenario) types.Scenario {
	out := types.Scenario{Name: in.Name}
	if in.BlockSizes != nil {
		out.BlockSizes = make([]int, len(in.BlockSizes))
		copy(out.BlockSizes, in.BlockSizes)
	}
	if in.ProcessSizes != nil {
		out.ProcessSizes = make([]int, len(in.ProcessSizes))
		copy(out.ProcessSizes, in.ProcessSizes)
	}

	return out
}
