package strategy

import (
	"testing"

	"github.com/Palmyraa/memfit/types"
	"github.com/stretchr/testify/require"
)

func TestWorstFit_Select(t *testing.T) {
	t.Run("selects largest free block that fits", func(t *testing.T) {
		s := NewWorstFit()
		blocks := freeBlocks(100, 500, 200, 300, 600)

		id, ok := s.Select(blocks, 212)

		require.True(t, ok)
		require.Equal(t, 4, id)
	})

	t.Run("breaks size ties by smallest id", func(t *testing.T) {
		s := NewWorstFit()
		blocks := freeBlocks(100, 600, 600, 300)

		id, ok := s.Select(blocks, 250)

		require.True(t, ok)
		require.Equal(t, 1, id)
	})

	t.Run("never picks a smaller block when a larger one fits", func(t *testing.T) {
		s := NewWorstFit()
		blocks := freeBlocks(100, 500, 200, 300, 600)

		id, ok := s.Select(blocks, 112)
		require.True(t, ok)

		chosen := blocks[id]
		for _, b := range blocks {
			if b.Fits(112) && b.ID != id {
				require.GreaterOrEqual(t, chosen.Size, b.Size,
					"block %d (%d KB) beats chosen block %d (%d KB)", b.ID, b.Size, id, chosen.Size)
			}
		}
	})

	t.Run("skips allocated blocks", func(t *testing.T) {
		s := NewWorstFit()
		blocks := freeBlocks(100, 500, 200, 300, 600)
		blocks = allocate(blocks, 4, types.NewProcess(2, 417))

		id, ok := s.Select(blocks, 112)

		require.True(t, ok)
		require.Equal(t, 1, id)
	})

	t.Run("returns no fit when nothing qualifies", func(t *testing.T) {
		s := NewWorstFit()
		blocks := freeBlocks(100, 200, 300)

		_, ok := s.Select(blocks, 426)

		require.False(t, ok)
	})
}
