package strategy

import (
	"testing"

	"github.com/Palmyraa/memfit/types"
	"github.com/stretchr/testify/require"
)

func TestFirstFit_Select(t *testing.T) {
	t.Run("selects first free block that fits", func(t *testing.T) {
		s := NewFirstFit()
		blocks := freeBlocks(100, 500, 200, 300, 600)

		id, ok := s.Select(blocks, 212)

		require.True(t, ok)
		require.Equal(t, 1, id)
	})

	t.Run("skips allocated blocks", func(t *testing.T) {
		s := NewFirstFit()
		blocks := freeBlocks(100, 500, 200, 300, 600)
		blocks = allocate(blocks, 1, types.NewProcess(1, 212))

		id, ok := s.Select(blocks, 417)

		require.True(t, ok)
		require.Equal(t, 4, id)
	})

	t.Run("accepts exact fit", func(t *testing.T) {
		s := NewFirstFit()
		blocks := freeBlocks(100, 200)

		id, ok := s.Select(blocks, 200)

		require.True(t, ok)
		require.Equal(t, 1, id)
	})

	t.Run("returns no fit when every block is too small", func(t *testing.T) {
		s := NewFirstFit()
		blocks := freeBlocks(100, 200, 300)

		_, ok := s.Select(blocks, 426)

		require.False(t, ok)
	})

	t.Run("returns no fit when every block is allocated", func(t *testing.T) {
		s := NewFirstFit()
		blocks := freeBlocks(500, 600)
		blocks = allocate(blocks, 0, types.NewProcess(1, 100))
		blocks = allocate(blocks, 1, types.NewProcess(2, 100))

		_, ok := s.Select(blocks, 50)

		require.False(t, ok)
	})

	t.Run("is deterministic for fixed input", func(t *testing.T) {
		s := NewFirstFit()
		blocks := freeBlocks(300, 300, 300)

		first, ok := s.Select(blocks, 100)
		require.True(t, ok)
		for range 10 {
			id, ok := s.Select(blocks, 100)
			require.True(t, ok)
			require.Equal(t, first, id)
		}
	})
}
