package types

// MetricsCollector defines methods for recording simulation metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// RunAll may execute strategy runs in parallel goroutines, so all methods
// must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces so custom
// collectors can embed NopMetrics and override only what they need.
type MetricsCollector interface {
	RunCollector
	PlacementCollector
	CacheCollector
}

// RunCollector defines metrics for whole strategy runs.
type RunCollector interface {
	// RecordRunDuration records the wall time of one strategy run.
	//
	// Parameters:
	//   - strategy: Display name of the strategy ("First Fit", ...)
	//   - duration: Time taken in seconds
	RecordRunDuration(strategy string, duration float64)

	// RecordRunOutcome records the allocation totals of a completed run.
	//
	// Parameters:
	//   - strategy: Display name of the strategy
	//   - allocated: Number of processes placed
	//   - total: Number of processes in the input
	RecordRunOutcome(strategy string, allocated, total int)

	// RecordFragmentation records the fragmentation aggregates of a run.
	//
	// Parameters:
	//   - strategy: Display name of the strategy
	//   - internalKB: Total internal fragmentation in KB
	//   - externalKB: External fragmentation in KB
	RecordFragmentation(strategy string, internalKB, externalKB int)
}

// PlacementCollector defines metrics for individual placement decisions.
type PlacementCollector interface {
	// RecordPlacement records a successful process placement.
	RecordPlacement(strategy string, internalFragKB int)

	// RecordUnallocated records a process no FREE block could fit.
	RecordUnallocated(strategy string)
}

// CacheCollector defines metrics for the simulator's result cache.
type CacheCollector interface {
	// RecordCacheLookup records a result cache lookup and whether it hit.
	RecordCacheLookup(hit bool)
}
