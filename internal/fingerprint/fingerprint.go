// Package fingerprint computes deterministic xxh3 digests of simulation
// inputs and results. Input fingerprints key the simulator's result cache;
// result fingerprints give callers a cheap way to compare runs.
package fingerprint

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/Palmyraa/memfit/types"
)

// Inputs returns a digest of one run's inputs: the strategy identity plus
// the ordered block and process size lists. Two runs with the same digest
// produce the same result.
func Inputs(strategy types.StrategyName, blockSizes, processSizes []int) uint64 {
	buf := make([]byte, 0, 8*(len(blockSizes)+len(processSizes)+3))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(strategy))
	buf = appendInts(buf, blockSizes)
	buf = appendInts(buf, processSizes)

	return xxh3.Hash(buf)
}

// Result returns a digest of a run's final state: block assignments in ID
// order plus the unallocated process list. Equal digests mean identical
// placements.
func Result(result *types.Result) uint64 {
	buf := make([]byte, 0, 8*(5*len(result.Blocks)+len(result.Unallocated)+2))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(result.Strategy))

	for _, b := range result.Blocks {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.ID))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.Size))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.Status))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(b.Requested))
		buf = append(buf, b.ProcessID...)
		buf = append(buf, 0)
	}

	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(result.Unallocated)))
	for _, p := range result.Unallocated {
		buf = append(buf, p.ID...)
		buf = append(buf, 0)
	}

	return xxh3.Hash(buf)
}

// appendInts writes a length-prefixed little-endian encoding of values.
func appendInts(buf []byte, values []int) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(values)))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}

	return buf
}
