// Package memfit simulates contiguous fixed-partition memory allocation and
// compares the classic placement strategies First Fit, Best Fit, and Worst
// Fit against the same sequence of memory blocks and process requests.
//
// Each strategy run owns a fresh block table, places processes strictly in
// input order (no lookahead, no backtracking, no deallocation), and reports
// the resulting internal and external fragmentation.
//
// # Quick Start
//
//	src := source.NewStatic(memfit.Scenario{
//	    BlockSizes:   []int{100, 500, 200, 300, 600},
//	    ProcessSizes: []int{212, 417, 112, 426},
//	})
//
//	sim, err := memfit.NewSimulator(nil, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := sim.Compare(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, row := range rows {
//	    fmt.Printf("%s: %d/%d allocated, internal=%dKB external=%dKB\n",
//	        row.Strategy, row.Metrics.AllocatedCount, row.Metrics.TotalProcesses,
//	        row.Metrics.TotalInternalFrag, row.Metrics.ExternalFrag)
//	}
//
// # Key Properties
//
//   - Deterministic: fixed inputs always produce identical placements;
//     Best/Worst Fit break size ties by smallest block ID
//   - Run-scoped state: strategy runs never share a mutable block table and
//     may execute in parallel (Config.Parallel)
//   - Unallocated is an outcome, not an error: only malformed input
//     (non-positive sizes, empty block list) fails a run
//
// # Advanced Usage
//
// Custom strategy set, structured logging and Prometheus metrics:
//
//	sim, err := memfit.NewSimulator(&cfg, src,
//	    memfit.WithStrategies(strategy.NewBestFit()),
//	    memfit.WithLogger(logging.NewSlogDefault()),
//	    memfit.WithMetrics(metrics.NewPrometheus(nil, "memfit")),
//	)
//
// See the examples/ directory for a complete working example.
package memfit
