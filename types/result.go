package types

// Result is the outcome of one strategy run: the final block state and the
// processes that could not be placed.
//
// Invariant: every input process appears either as exactly one block's
// occupant or in Unallocated, never both, never omitted.
type Result struct {
	// Scenario is the name of the scenario this run was executed against.
	Scenario string `json:"scenario,omitempty"`

	// Strategy identifies the placement strategy used for the run.
	Strategy StrategyName `json:"strategy"`

	// Blocks is the final block table state, ordered by ascending ID.
	Blocks []Block `json:"blocks"`

	// Unallocated lists the processes no FREE block fit, in input order.
	Unallocated []Process `json:"unallocated"`

	// TotalProcesses is the number of processes in the input sequence.
	TotalProcesses int `json:"totalProcesses"`

	// TotalMemory is the sum of all block sizes in KB.
	TotalMemory int `json:"totalMemory"`
}

// AllocatedCount returns the number of processes that were placed.
func (r *Result) AllocatedCount() int {
	return r.TotalProcesses - len(r.Unallocated)
}

// RunMetrics are the per-run aggregates derived from a Result.
//
// Identities:
//   - ExternalFrag = TotalFree - LargestFreeBlock
//   - TotalFree + TotalInternalFrag + sum(requested) = total memory
type RunMetrics struct {
	// AllocatedCount is the number of processes placed into blocks.
	AllocatedCount int `json:"allocatedCount"`

	// TotalProcesses is the number of processes in the input sequence.
	TotalProcesses int `json:"totalProcesses"`

	// TotalInternalFrag is the summed internal fragmentation in KB across
	// ALLOCATED blocks.
	TotalInternalFrag int `json:"totalInternalFrag"`

	// TotalFree is the summed size in KB of FREE blocks.
	TotalFree int `json:"totalFree"`

	// LargestFreeBlock is the size in KB of the largest FREE block (0 if
	// no block is FREE).
	LargestFreeBlock int `json:"largestFreeBlock"`

	// ExternalFrag is free memory not usable as one contiguous block of
	// LargestFreeBlock size: TotalFree - LargestFreeBlock.
	ExternalFrag int `json:"externalFrag"`
}

// ComparisonRow pairs a strategy with its run metrics.
type ComparisonRow struct {
	// Strategy identifies the placement strategy of the row.
	Strategy StrategyName `json:"strategy"`

	// Metrics are the aggregates of the strategy's run.
	Metrics RunMetrics `json:"metrics"`
}
