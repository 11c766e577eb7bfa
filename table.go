package memfit

import (
	"fmt"

	"github.com/Palmyraa/memfit/types"
)

// BlockTable holds the mutable allocation state of one strategy run.
//
// Blocks are keyed by 0-based index in input order. Sizes are immutable once
// the table is built; the only state transition is FREE → ALLOCATED. There
// is no split, merge, or free: the table models fixed partitions without
// deallocation.
//
// A BlockTable is owned by exactly one run and must not be shared.
type BlockTable struct {
	blocks []types.Block
}

// NewBlockTable builds an all-FREE table from the given block sizes.
//
// Parameters:
//   - sizes: Partition sizes in KB, in layout order
//
// Returns:
//   - *BlockTable: Fresh table with every block FREE
//   - error: wraps types.ErrInvalidInput when sizes is empty or contains a
//     non-positive value
func NewBlockTable(sizes []int) (*BlockTable, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: memory blocks cannot be empty", types.ErrInvalidInput)
	}

	blocks := make([]types.Block, len(sizes))
	for i, size := range sizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: block size at index %d must be positive, got %d", types.ErrInvalidInput, i, size)
		}
		blocks[i] = types.Block{ID: i, Size: size, Status: types.BlockFree}
	}

	return &BlockTable{blocks: blocks}, nil
}

// Len returns the number of blocks in the table.
func (t *BlockTable) Len() int {
	return len(t.blocks)
}

// TotalMemory returns the sum of all block sizes in KB.
func (t *BlockTable) TotalMemory() int {
	total := 0
	for _, b := range t.blocks {
		total += b.Size
	}

	return total
}

// Blocks returns a snapshot of the current block state, ordered by ascending
// ID. The caller may not mutate table state through it.
func (t *BlockTable) Blocks() []types.Block {
	out := make([]types.Block, len(t.blocks))
	copy(out, t.blocks)

	return out
}

// FreeBlocks returns a snapshot of the blocks currently FREE, ordered by
// ascending ID.
func (t *BlockTable) FreeBlocks() []types.Block {
	var out []types.Block
	for _, b := range t.blocks {
		if b.Status == types.BlockFree {
			out = append(out, b)
		}
	}

	return out
}

// Get returns the block with the given ID.
//
// Returns:
//   - types.Block: Current state of the block
//   - error: wraps types.ErrBlockNotFound when the ID is out of range
func (t *BlockTable) Get(id int) (types.Block, error) {
	if id < 0 || id >= len(t.blocks) {
		return types.Block{}, fmt.Errorf("%w: id %d (table has %d blocks)", types.ErrBlockNotFound, id, len(t.blocks))
	}

	return t.blocks[id], nil
}

// Allocate places a process into the block with the given ID.
//
// On success the block becomes ALLOCATED with the process as occupant,
// Requested = process size and InternalFrag = block size - process size.
//
// Parameters:
//   - id: Target block ID
//   - proc: Process to place
//
// Returns:
//   - types.Block: Updated block state
//   - error: wraps types.ErrBlockNotFound for an out-of-range ID, or
//     types.ErrInvalidState when the block is not FREE or the process does
//     not fit. The latter indicates a faulty strategy, not a user error.
func (t *BlockTable) Allocate(id int, proc types.Process) (types.Block, error) {
	if id < 0 || id >= len(t.blocks) {
		return types.Block{}, fmt.Errorf("%w: id %d (table has %d blocks)", types.ErrBlockNotFound, id, len(t.blocks))
	}

	b := &t.blocks[id]
	if b.Status != types.BlockFree {
		return types.Block{}, fmt.Errorf("%w: block %d is %s (held by %s)", types.ErrInvalidState, id, b.Status, b.ProcessID)
	}
	if proc.Size > b.Size {
		return types.Block{}, fmt.Errorf("%w: process %s (%d KB) exceeds block %d (%d KB)", types.ErrInvalidState, proc.ID, proc.Size, id, b.Size)
	}

	b.Status = types.BlockAllocated
	b.ProcessID = proc.ID
	b.Requested = proc.Size
	b.InternalFrag = b.Size - proc.Size

	return *b, nil
}
