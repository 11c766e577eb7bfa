// Package hooks provides default hook implementations.
package hooks

import (
	"context"

	"github.com/Palmyraa/memfit/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default used when no custom hooks are provided, eliminating
// the need for nil checks throughout the run loop.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements the hook callbacks.
var (
	_ func(context.Context, types.StrategyName, types.Process, types.Block) error = (*NopHooks)(nil).OnProcessPlaced
	_ func(context.Context, types.StrategyName, types.Process) error              = (*NopHooks)(nil).OnProcessUnallocated
	_ func(context.Context, *types.Result) error                                  = (*NopHooks)(nil).OnRunCompleted
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - *types.Hooks: Hooks with no-op implementations
func NewNop() *types.Hooks {
	h := &NopHooks{}

	return &types.Hooks{
		OnProcessPlaced:      h.OnProcessPlaced,
		OnProcessUnallocated: h.OnProcessUnallocated,
		OnRunCompleted:       h.OnRunCompleted,
	}
}

// OnProcessPlaced is a no-op implementation.
func (h *NopHooks) OnProcessPlaced(_ context.Context, _ types.StrategyName, _ types.Process, _ types.Block) error {
	return nil
}

// OnProcessUnallocated is a no-op implementation.
func (h *NopHooks) OnProcessUnallocated(_ context.Context, _ types.StrategyName, _ types.Process) error {
	return nil
}

// OnRunCompleted is a no-op implementation.
func (h *NopHooks) OnRunCompleted(_ context.Context, _ *types.Result) error {
	return nil
}
