package memfit

import "github.com/Palmyraa/memfit/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types via
// type aliases. Internal packages and the strategy package depend on the
// `types` subpackage directly, which avoids import cycles while still
// offering memfit.Block, memfit.Result, etc. to users.
type (
	Block         = types.Block
	BlockStatus   = types.BlockStatus
	Process       = types.Process
	ProcessState  = types.ProcessState
	Scenario      = types.Scenario
	Result        = types.Result
	RunMetrics    = types.RunMetrics
	ComparisonRow = types.ComparisonRow
	StrategyName  = types.StrategyName
)

// Re-export interfaces from the types package for convenience.
type (
	PlacementStrategy = types.PlacementStrategy
	ScenarioSource    = types.ScenarioSource
	MetricsCollector  = types.MetricsCollector
	Logger            = types.Logger
	Hooks             = types.Hooks
)

// Re-export strategy name constants.
const (
	StrategyFirstFit = types.StrategyFirstFit
	StrategyBestFit  = types.StrategyBestFit
	StrategyWorstFit = types.StrategyWorstFit
)

// Re-export block status constants.
const (
	BlockFree      = types.BlockFree
	BlockAllocated = types.BlockAllocated
)

// Re-export process state constants.
const (
	ProcessPending     = types.ProcessPending
	ProcessAllocated   = types.ProcessAllocated
	ProcessUnallocated = types.ProcessUnallocated
)
