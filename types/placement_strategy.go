package types

import "fmt"

// StrategyName identifies one of the closed set of placement strategies.
//
// The zero value is StrategyFirstFit; declaration order (First, Best, Worst)
// is the canonical ordering of comparison tables.
type StrategyName int

const (
	// StrategyFirstFit picks the first FREE block that fits.
	StrategyFirstFit StrategyName = iota

	// StrategyBestFit picks the smallest FREE block that fits.
	StrategyBestFit

	// StrategyWorstFit picks the largest FREE block that fits.
	StrategyWorstFit
)

// String returns the display name of the strategy.
func (n StrategyName) String() string {
	switch n {
	case StrategyFirstFit:
		return "First Fit"
	case StrategyBestFit:
		return "Best Fit"
	case StrategyWorstFit:
		return "Worst Fit"
	default:
		return "Unknown"
	}
}

// ParseStrategyName resolves a configuration string to a StrategyName.
//
// Accepted values are the display names ("First Fit") and compact forms
// ("first-fit", "first_fit", "firstfit"), case-insensitively.
//
// Parameters:
//   - s: Strategy name string from configuration
//
// Returns:
//   - StrategyName: Resolved strategy name
//   - error: wraps ErrUnknownStrategy when the string matches no strategy
func ParseStrategyName(s string) (StrategyName, error) {
	switch normalizeStrategyName(s) {
	case "firstfit":
		return StrategyFirstFit, nil
	case "bestfit":
		return StrategyBestFit, nil
	case "worstfit":
		return StrategyWorstFit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

func normalizeStrategyName(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c >= 'a' && c <= 'z':
			out = append(out, c)
		}
	}

	return string(out)
}

// PlacementStrategy selects a target block for a process.
//
// Strategy implementations must:
//   - Be deterministic (same input → same output)
//   - Be pure (never mutate the block slice; the allocator applies the result)
//   - Handle the no-fit case by returning ok=false
//
// The allocator calls Select once per process, in strict input order, against
// the current block state of the run.
type PlacementStrategy interface {
	// Name returns the strategy identity used in results and reports.
	Name() StrategyName

	// Select picks a target block for a process of the given size.
	//
	// Parameters:
	//   - blocks: Current block state, ordered by ascending block ID
	//   - processSize: Requested memory in KB
	//
	// Returns:
	//   - int: ID of the selected block (meaningful only when ok is true)
	//   - bool: false when no FREE block fits the process
	Select(blocks []Block, processSize int) (int, bool)
}
