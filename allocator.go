package memfit

import (
	"context"
	"fmt"

	"github.com/Palmyraa/memfit/types"
)

// runAllocation executes one full strategy run against a fresh block table.
//
// Processes are evaluated strictly in input order with 1-based "P<k>" labels
// fixed at construction. An earlier process may consume a block a later,
// smaller process would have fit into; there is no lookahead, reordering, or
// backtracking. A process the strategy finds no block for goes to
// Unallocated and consumes nothing; within a run that outcome is terminal.
//
// Input validation happens before any allocation is attempted. Side effects
// are confined to the table owned by this call.
func runAllocation(
	ctx context.Context,
	strat types.PlacementStrategy,
	scenario types.Scenario,
	logger types.Logger,
	metrics types.MetricsCollector,
	hooks *types.Hooks,
) (*types.Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	table, err := NewBlockTable(scenario.BlockSizes)
	if err != nil {
		return nil, err
	}

	name := strat.Name()
	unallocated := make([]types.Process, 0)

	for i, size := range scenario.ProcessSizes {
		proc := types.NewProcess(i+1, size)

		id, ok := strat.Select(table.Blocks(), proc.Size)
		if !ok {
			proc.State = types.ProcessUnallocated
			unallocated = append(unallocated, proc)
			metrics.RecordUnallocated(name.String())
			logger.Debug("no block fits process",
				"strategy", name.String(),
				"process", proc.ID,
				"size", proc.Size)
			if hooks.OnProcessUnallocated != nil {
				if err := hooks.OnProcessUnallocated(ctx, name, proc); err != nil {
					logger.Error("OnProcessUnallocated hook failed", "process", proc.ID, "error", err)
				}
			}

			continue
		}

		block, err := table.Allocate(id, proc)
		if err != nil {
			// A correct strategy never selects an occupied or too-small
			// block; surface this as the programming fault it is.
			return nil, fmt.Errorf("strategy %s selected unusable block: %w", name, err)
		}
		proc.State = types.ProcessAllocated

		metrics.RecordPlacement(name.String(), block.InternalFrag)
		logger.Debug("process placed",
			"strategy", name.String(),
			"process", proc.ID,
			"block", block.ID,
			"blockSize", block.Size,
			"internalFrag", block.InternalFrag)
		if hooks.OnProcessPlaced != nil {
			if err := hooks.OnProcessPlaced(ctx, name, proc, block); err != nil {
				logger.Error("OnProcessPlaced hook failed", "process", proc.ID, "error", err)
			}
		}
	}

	result := &types.Result{
		Scenario:       scenario.Name,
		Strategy:       name,
		Blocks:         table.Blocks(),
		Unallocated:    unallocated,
		TotalProcesses: len(scenario.ProcessSizes),
		TotalMemory:    table.TotalMemory(),
	}

	if hooks.OnRunCompleted != nil {
		if err := hooks.OnRunCompleted(ctx, result); err != nil {
			logger.Error("OnRunCompleted hook failed", "strategy", name.String(), "error", err)
		}
	}

	return result, nil
}
