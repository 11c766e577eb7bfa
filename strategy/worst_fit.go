package strategy

import "github.com/Palmyraa/memfit/types"

// WorstFit places each process into the largest FREE block that fits.
type WorstFit struct{}

var _ types.PlacementStrategy = (*WorstFit)(nil)

// NewWorstFit creates a new worst-fit strategy.
//
// Among FREE blocks with size >= processSize the strategy selects the one
// with maximum size, leaving the largest possible leftover inside the chosen
// block. Ties are broken by smallest block ID.
//
// Returns:
//   - *WorstFit: Initialized worst-fit strategy
func NewWorstFit() *WorstFit {
	return &WorstFit{}
}

// Name returns types.StrategyWorstFit.
func (w *WorstFit) Name() types.StrategyName {
	return types.StrategyWorstFit
}

// Select returns the ID of the largest FREE block that fits the process, or
// ok=false when no FREE block qualifies. The ascending scan keeps the first
// maximum found, so equal-size ties resolve to the smallest ID.
func (w *WorstFit) Select(blocks []types.Block, processSize int) (int, bool) {
	worstID := 0
	worstSize := 0
	found := false

	for _, blk := range blocks {
		if !blk.Fits(processSize) {
			continue
		}
		if !found || blk.Size > worstSize {
			worstID = blk.ID
			worstSize = blk.Size
			found = true
		}
	}

	return worstID, found
}
