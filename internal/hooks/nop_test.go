package hooks

import (
	"context"
	"testing"

	"github.com/Palmyraa/memfit/types"
	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	h := NewNop()
	ctx := context.Background()

	require.NotNil(t, h.OnProcessPlaced)
	require.NotNil(t, h.OnProcessUnallocated)
	require.NotNil(t, h.OnRunCompleted)

	proc := types.NewProcess(1, 212)
	block := types.Block{ID: 1, Size: 500, Status: types.BlockAllocated}

	require.NoError(t, h.OnProcessPlaced(ctx, types.StrategyFirstFit, proc, block))
	require.NoError(t, h.OnProcessUnallocated(ctx, types.StrategyFirstFit, proc))
	require.NoError(t, h.OnRunCompleted(ctx, &types.Result{}))
}
