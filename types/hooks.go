package types

import "context"

// Hooks defines optional callbacks for simulation lifecycle events.
//
// All hooks are optional. Hooks are invoked synchronously from the run loop,
// in input order, so implementations should complete quickly. Hook errors are
// logged and never fail the run.
//
// Example:
//
//	hooks := &memfit.Hooks{
//	    OnProcessUnallocated: func(ctx context.Context, strategy memfit.StrategyName, proc memfit.Process) error {
//	        fmt.Printf("%s: %s (%d KB) not placed\n", strategy, proc.ID, proc.Size)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnProcessPlaced is called after a process is allocated into a block.
	OnProcessPlaced func(ctx context.Context, strategy StrategyName, proc Process, block Block) error

	// OnProcessUnallocated is called when no FREE block fits a process.
	OnProcessUnallocated func(ctx context.Context, strategy StrategyName, proc Process) error

	// OnRunCompleted is called once per run with the final result.
	OnRunCompleted func(ctx context.Context, result *Result) error
}
