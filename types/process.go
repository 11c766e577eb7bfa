package types

import "fmt"

// ProcessState represents the per-run outcome of a process.
//
// States follow a defined progression during a run:
//
//	ProcessPending → ProcessAllocated | ProcessUnallocated
//
// Both outcomes are terminal: there is no deallocation, so an unallocated
// process is never retried within a run.
type ProcessState int

const (
	// ProcessPending is the state before the process takes its turn.
	ProcessPending ProcessState = iota

	// ProcessAllocated indicates the process was placed into a block.
	ProcessAllocated

	// ProcessUnallocated indicates no FREE block fit the process at its turn.
	ProcessUnallocated
)

// String returns the string representation of the process state.
func (s ProcessState) String() string {
	switch s {
	case ProcessPending:
		return "Pending"
	case ProcessAllocated:
		return "Allocated"
	case ProcessUnallocated:
		return "Unallocated"
	default:
		return "Unknown"
	}
}

// Process is one memory request.
//
// Processes are labeled "P<k>" where k is the 1-based position in the input
// sequence. Label and size are fixed at construction; only State advances,
// once, when the process takes its turn.
type Process struct {
	// ID is the process label, e.g. "P1".
	ID string `json:"id"`

	// Size is the requested memory in KB. Always positive.
	Size int `json:"size"`

	// State is the per-run outcome, ProcessPending until the process has
	// taken its turn.
	State ProcessState `json:"state"`
}

// NewProcess creates a process from its 1-based input position and size.
//
// Parameters:
//   - position: 1-based position in the input sequence (yields label "P<position>")
//   - size: Requested memory in KB
//
// Returns:
//   - Process: Process in state ProcessPending
func NewProcess(position, size int) Process {
	return Process{
		ID:    fmt.Sprintf("P%d", position),
		Size:  size,
		State: ProcessPending,
	}
}
