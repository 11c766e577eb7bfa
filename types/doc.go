// Package types contains the core types and interfaces shared across the
// memfit library.
//
// It is a leaf package: internal packages and the strategy package depend on
// types without depending on the root memfit package, which re-exports the
// public surface via type aliases. This avoids import cycles while keeping
// memfit.Block, memfit.Result, etc. available to users.
package types
