// Package strategy provides the built-in placement strategy implementations.
//
// Placement strategies decide which FREE block receives a process. The
// package includes the closed set of three classic fit policies:
//
//   - FirstFit: first FREE block (ascending ID) large enough
//   - BestFit: smallest FREE block large enough (least internal fragmentation)
//   - WorstFit: largest FREE block large enough (largest leftover)
//
// # Tie-Breaking
//
// BestFit and WorstFit break ties between equally sized candidates by
// smallest block ID: the scan runs in ascending ID order and the first
// extremum found wins. This makes every strategy fully deterministic.
//
// All strategies are pure: they never mutate block state. The allocator
// applies the selected placement.
//
// Custom strategies can be implemented by satisfying the
// types.PlacementStrategy interface, though the simulator's comparison
// reports are defined over the built-in set.
package strategy
