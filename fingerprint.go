package memfit

import (
	"github.com/Palmyraa/memfit/internal/fingerprint"
	"github.com/Palmyraa/memfit/types"
)

// ResultFingerprint returns a deterministic digest of a run's placements:
// the final block assignments plus the unallocated process list.
//
// Two results with the same fingerprint placed every process identically.
// Useful for cheap cross-run comparison and for asserting that re-running a
// strategy on fixed inputs is order-stable.
func ResultFingerprint(result *types.Result) uint64 {
	return fingerprint.Result(result)
}
