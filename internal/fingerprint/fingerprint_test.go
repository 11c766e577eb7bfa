package fingerprint

import (
	"testing"

	"github.com/Palmyraa/memfit/types"
	"github.com/stretchr/testify/require"
)

func TestInputs(t *testing.T) {
	blocks := []int{100, 500, 200, 300, 600}
	procs := []int{212, 417, 112, 426}

	t.Run("is deterministic", func(t *testing.T) {
		a := Inputs(types.StrategyFirstFit, blocks, procs)
		b := Inputs(types.StrategyFirstFit, blocks, procs)
		require.Equal(t, a, b)
	})

	t.Run("differs across strategies", func(t *testing.T) {
		a := Inputs(types.StrategyFirstFit, blocks, procs)
		b := Inputs(types.StrategyBestFit, blocks, procs)
		require.NotEqual(t, a, b)
	})

	t.Run("differs when sizes change", func(t *testing.T) {
		a := Inputs(types.StrategyFirstFit, blocks, procs)
		b := Inputs(types.StrategyFirstFit, blocks, []int{212, 417, 112})
		require.NotEqual(t, a, b)
	})

	t.Run("length prefix separates block and process lists", func(t *testing.T) {
		// Same flattened values, different split point.
		a := Inputs(types.StrategyFirstFit, []int{100, 200}, []int{300})
		b := Inputs(types.StrategyFirstFit, []int{100}, []int{200, 300})
		require.NotEqual(t, a, b)
	})
}

func TestResult(t *testing.T) {
	base := func() *types.Result {
		return &types.Result{
			Strategy: types.StrategyBestFit,
			Blocks: []types.Block{
				{ID: 0, Size: 100, Status: types.BlockFree},
				{ID: 1, Size: 500, Status: types.BlockAllocated, ProcessID: "P2", Requested: 417, InternalFrag: 83},
			},
			Unallocated:    []types.Process{{ID: "P4", Size: 426}},
			TotalProcesses: 2,
			TotalMemory:    600,
		}
	}

	t.Run("is deterministic", func(t *testing.T) {
		require.Equal(t, Result(base()), Result(base()))
	})

	t.Run("differs when an assignment changes", func(t *testing.T) {
		changed := base()
		changed.Blocks[1].ProcessID = "P1"
		require.NotEqual(t, Result(base()), Result(changed))
	})

	t.Run("differs when unallocated changes", func(t *testing.T) {
		changed := base()
		changed.Unallocated = nil
		require.NotEqual(t, Result(base()), Result(changed))
	})
}
