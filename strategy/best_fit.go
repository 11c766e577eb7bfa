package strategy

import "github.com/Palmyraa/memfit/types"

// BestFit places each process into the smallest FREE block that fits.
type BestFit struct{}

var _ types.PlacementStrategy = (*BestFit)(nil)

// NewBestFit creates a new best-fit strategy.
//
// Among FREE blocks with size >= processSize the strategy selects the one
// with minimum size, minimizing the internal fragmentation of each
// placement. Ties are broken by smallest block ID.
//
// Returns:
//   - *BestFit: Initialized best-fit strategy
func NewBestFit() *BestFit {
	return &BestFit{}
}

// Name returns types.StrategyBestFit.
func (b *BestFit) Name() types.StrategyName {
	return types.StrategyBestFit
}

// Select returns the ID of the smallest FREE block that fits the process,
// or ok=false when no FREE block qualifies. The ascending scan keeps the
// first minimum found, so equal-size ties resolve to the smallest ID.
func (b *BestFit) Select(blocks []types.Block, processSize int) (int, bool) {
	bestID := 0
	bestSize := 0
	found := false

	for _, blk := range blocks {
		if !blk.Fits(processSize) {
			continue
		}
		if !found || blk.Size < bestSize {
			bestID = blk.ID
			bestSize = blk.Size
			found = true
		}
	}

	return bestID, found
}
