package types

import "errors"

// Sentinel errors for the memfit library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with context using
// fmt.Errorf("...: %w", err) so callers can match on the sentinel.

// Allocation errors - returned by the allocation engine.
var (
	// ErrInvalidInput is returned when a block or process size is
	// non-positive, or the block list is empty. Raised before any
	// allocation is attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidState is returned when an allocation targets a block that
	// is not FREE or is too small for the process. Given correct placement
	// strategies this never occurs; it indicates a programming error in a
	// strategy implementation, not a user-facing condition.
	ErrInvalidState = errors.New("invalid block state")

	// ErrBlockNotFound is returned when a block ID is outside the table range.
	ErrBlockNotFound = errors.New("block not found")
)

// Strategy errors.
var (
	// ErrUnknownStrategy is returned when a strategy name does not match a
	// known placement strategy.
	ErrUnknownStrategy = errors.New("unknown placement strategy")
)

// Scenario errors.
var (
	// ErrScenarioUnavailable is returned when a scenario source cannot
	// provide a scenario (e.g. unreadable file).
	ErrScenarioUnavailable = errors.New("scenario unavailable")
)
