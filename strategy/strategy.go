package strategy

import (
	"fmt"

	"github.com/Palmyraa/memfit/types"
)

// New creates the placement strategy for the given name.
//
// Parameters:
//   - name: Strategy identity (StrategyFirstFit, StrategyBestFit, StrategyWorstFit)
//
// Returns:
//   - types.PlacementStrategy: Initialized strategy
//   - error: wraps types.ErrUnknownStrategy for names outside the closed set
//
// Example:
//
//	s, err := strategy.New(types.StrategyBestFit)
//	if err != nil { /* handle */ }
//	id, ok := s.Select(blocks, 212)
func New(name types.StrategyName) (types.PlacementStrategy, error) {
	switch name {
	case types.StrategyFirstFit:
		return NewFirstFit(), nil
	case types.StrategyBestFit:
		return NewBestFit(), nil
	case types.StrategyWorstFit:
		return NewWorstFit(), nil
	default:
		return nil, fmt.Errorf("%w: %d", types.ErrUnknownStrategy, name)
	}
}

// All returns the built-in strategies in declaration order: First Fit,
// Best Fit, Worst Fit. This is the canonical row order of comparison tables.
func All() []types.PlacementStrategy {
	return []types.PlacementStrategy{
		NewFirstFit(),
		NewBestFit(),
		NewWorstFit(),
	}
}
