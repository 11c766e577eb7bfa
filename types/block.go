package types

// BlockStatus represents the allocation state of a memory block.
//
// A block starts FREE and may transition to ALLOCATED exactly once per run.
// There is no transition back: the simulator models fixed partitions without
// deallocation.
type BlockStatus int

const (
	// BlockFree indicates the block holds no process.
	BlockFree BlockStatus = iota

	// BlockAllocated indicates the block holds exactly one process.
	BlockAllocated
)

// String returns the string representation of the block status.
func (s BlockStatus) String() string {
	switch s {
	case BlockFree:
		return "FREE"
	case BlockAllocated:
		return "ALLOCATED"
	default:
		return "Unknown"
	}
}

// Block is one fixed-size contiguous memory partition.
//
// The ID is the 0-based position of the block in the input order and is stable
// for the whole run. Size is immutable once the run starts. ProcessID,
// Requested and InternalFrag are zero-valued while the block is FREE.
type Block struct {
	// ID is the 0-based, run-stable block index.
	ID int `json:"id"`

	// Size is the partition size in KB. Always positive.
	Size int `json:"size"`

	// Status is the current allocation state.
	Status BlockStatus `json:"status"`

	// ProcessID is the label of the occupying process ("" when FREE).
	ProcessID string `json:"processId,omitempty"`

	// Requested is the occupying process size in KB (0 when FREE).
	Requested int `json:"requested,omitempty"`

	// InternalFrag is Size - Requested when ALLOCATED, 0 when FREE.
	InternalFrag int `json:"internalFrag"`
}

// Fits reports whether a process of the given size can be placed into the
// block right now, i.e. the block is FREE and large enough.
func (b Block) Fits(processSize int) bool {
	return b.Status == BlockFree && b.Size >= processSize
}
