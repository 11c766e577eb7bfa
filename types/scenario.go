package types

import "fmt"

// Scenario is the normalized input for one simulation: an ordered list of
// block sizes and an ordered list of process sizes, both in KB.
//
// A Scenario is the only input shape the core accepts. Parsing of textual
// notations ("100, 500", "[100,500]", "100KB") is a collaborator concern and
// must normalize to plain positive integers before constructing a Scenario.
type Scenario struct {
	// Name is an optional human-readable label for reports and logs.
	Name string `yaml:"name" json:"name,omitempty"`

	// BlockSizes are the fixed partition sizes in KB, in layout order.
	BlockSizes []int `yaml:"blockSizes" json:"blockSizes"`

	// ProcessSizes are the memory requests in KB, in arrival order.
	ProcessSizes []int `yaml:"processSizes" json:"processSizes"`
}

// TotalMemory returns the sum of all block sizes in KB.
func (s Scenario) TotalMemory() int {
	total := 0
	for _, size := range s.BlockSizes {
		total += size
	}

	return total
}

// Validate checks the scenario against the core input contract.
//
// Rules:
//   - BlockSizes must be non-empty and contain only positive integers
//   - ProcessSizes must contain only positive integers; an empty process
//     list is valid (degenerate run, all blocks stay FREE)
//
// Returns:
//   - error: wraps ErrInvalidInput with the offending value, nil if valid
func (s Scenario) Validate() error {
	if len(s.BlockSizes) == 0 {
		return fmt.Errorf("%w: memory blocks cannot be empty", ErrInvalidInput)
	}
	for i, size := range s.BlockSizes {
		if size <= 0 {
			return fmt.Errorf("%w: block size at index %d must be positive, got %d", ErrInvalidInput, i, size)
		}
	}
	for i, size := range s.ProcessSizes {
		if size <= 0 {
			return fmt.Errorf("%w: process size at index %d must be positive, got %d", ErrInvalidInput, i, size)
		}
	}

	return nil
}
