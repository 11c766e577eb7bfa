// Package source provides built-in types.ScenarioSource implementations.
//
// A scenario source supplies the simulator with the normalized input: block
// sizes and process sizes in KB.
//
//   - Static: fixed in-memory scenario, updatable between runs
//   - File: scenario loaded from a YAML file on each fetch
//
// Free-text notations ("100, 500", "[100,500]", "100KB") are deliberately
// not handled here; collaborators must normalize to plain positive integers
// before the core sees them.
package source
