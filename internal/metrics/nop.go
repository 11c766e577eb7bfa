// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/Palmyraa/memfit/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used. NopMetrics is the Simulator default when no
// WithMetrics option is given.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RunCollector implementation

// RecordRunDuration discards the run duration metric.
func (n *NopMetrics) RecordRunDuration(_ /* strategy */ string, _ /* duration */ float64) {
	// No-op
}

// RecordRunOutcome discards the run outcome metric.
func (n *NopMetrics) RecordRunOutcome(_ /* strategy */ string, _ /* allocated */, _ /* total */ int) {
	// No-op
}

// RecordFragmentation discards the fragmentation metric.
func (n *NopMetrics) RecordFragmentation(_ /* strategy */ string, _ /* internalKB */, _ /* externalKB */ int) {
	// No-op
}

// PlacementCollector implementation

// RecordPlacement discards the placement metric.
func (n *NopMetrics) RecordPlacement(_ /* strategy */ string, _ /* internalFragKB */ int) {
	// No-op
}

// RecordUnallocated discards the unallocated process metric.
func (n *NopMetrics) RecordUnallocated(_ /* strategy */ string) {
	// No-op
}

// CacheCollector implementation

// RecordCacheLookup discards the cache lookup metric.
func (n *NopMetrics) RecordCacheLookup(_ /* hit */ bool) {
	// No-op
}
