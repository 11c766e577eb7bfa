package memfit

import "github.com/Palmyraa/memfit/types"

// Summarize derives the per-run aggregates from a run result.
//
// It is a pure function over the final block table:
//
//	TotalInternalFrag = sum of InternalFrag over ALLOCATED blocks
//	TotalFree         = sum of Size over FREE blocks
//	LargestFreeBlock  = max Size over FREE blocks (0 if none FREE)
//	ExternalFrag      = TotalFree - LargestFreeBlock
//	AllocatedCount    = TotalProcesses - len(Unallocated)
//
// Parameters:
//   - result: Final state of one strategy run
//
// Returns:
//   - types.RunMetrics: Derived aggregates
func Summarize(result *types.Result) types.RunMetrics {
	m := types.RunMetrics{
		AllocatedCount: result.AllocatedCount(),
		TotalProcesses: result.TotalProcesses,
	}

	for _, b := range result.Blocks {
		switch b.Status {
		case types.BlockAllocated:
			m.TotalInternalFrag += b.InternalFrag
		case types.BlockFree:
			m.TotalFree += b.Size
			if b.Size > m.LargestFreeBlock {
				m.LargestFreeBlock = b.Size
			}
		}
	}

	m.ExternalFrag = m.TotalFree - m.LargestFreeBlock

	return m
}

// BuildComparison maps run results to a comparison table, one row per
// result, preserving input order.
//
// Parameters:
//   - results: Run results in strategy declaration order
//
// Returns:
//   - []types.ComparisonRow: One (strategy, metrics) row per result
func BuildComparison(results []*types.Result) []types.ComparisonRow {
	rows := make([]types.ComparisonRow, 0, len(results))
	for _, result := range results {
		rows = append(rows, types.ComparisonRow{
			Strategy: result.Strategy,
			Metrics:  Summarize(result),
		})
	}

	return rows
}
