package strategy

import "github.com/Palmyraa/memfit/types"

// FirstFit places each process into the first FREE block that fits.
type FirstFit struct{}

var _ types.PlacementStrategy = (*FirstFit)(nil)

// NewFirstFit creates a new first-fit strategy.
//
// The strategy scans blocks in ascending ID order and selects the first FREE
// block with size >= processSize. It is the fastest policy and tends to
// fragment the low end of memory first.
//
// Returns:
//   - *FirstFit: Initialized first-fit strategy
func NewFirstFit() *FirstFit {
	return &FirstFit{}
}

// Name returns types.StrategyFirstFit.
func (f *FirstFit) Name() types.StrategyName {
	return types.StrategyFirstFit
}

// Select returns the ID of the first FREE block that fits the process, or
// ok=false when no FREE block qualifies.
func (f *FirstFit) Select(blocks []types.Block, processSize int) (int, bool) {
	for _, b := range blocks {
		if b.Fits(processSize) {
			return b.ID, true
		}
	}

	return 0, false
}
