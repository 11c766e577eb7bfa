package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Palmyraa/memfit/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so creating the collector never
// panics on registration conflicts before it is actually exercised.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runsTotal        *prometheus.CounterVec
	runDuration      *prometheus.HistogramVec
	processesAlloc   *prometheus.GaugeVec
	processesTotal   *prometheus.GaugeVec
	internalFragKB   *prometheus.GaugeVec
	externalFragKB   *prometheus.GaugeVec
	placementsTotal  *prometheus.CounterVec
	placementFragKB  *prometheus.HistogramVec
	unallocatedTotal *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "memfit" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "memfit"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "runs_total",
			Help:      "Total completed strategy runs by strategy.",
		}, []string{"strategy"})

		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "run_duration_seconds",
			Help:      "Wall time of strategy runs in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs .. ~2.6s
		}, []string{"strategy"})

		p.processesAlloc = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "processes_allocated",
			Help:      "Processes placed in the most recent run, by strategy.",
		}, []string{"strategy"})
		p.processesTotal = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "processes_total",
			Help:      "Processes in the input of the most recent run, by strategy.",
		}, []string{"strategy"})

		p.internalFragKB = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "internal_fragmentation_kb",
			Help:      "Total internal fragmentation of the most recent run in KB, by strategy.",
		}, []string{"strategy"})
		p.externalFragKB = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "simulation",
			Name:      "external_fragmentation_kb",
			Help:      "External fragmentation of the most recent run in KB, by strategy.",
		}, []string{"strategy"})

		p.placementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "placements_total",
			Help:      "Total successful process placements by strategy.",
		}, []string{"strategy"})
		p.placementFragKB = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "placement_internal_frag_kb",
			Help:      "Internal fragmentation per placement in KB.",
			Buckets:   []float64{0, 8, 32, 64, 128, 256, 512, 1024},
		}, []string{"strategy"})
		p.unallocatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "unallocated_total",
			Help:      "Total processes no FREE block could fit, by strategy.",
		}, []string{"strategy"})

		p.cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Result cache lookups by outcome (hit/miss).",
		}, []string{"result"})

		p.reg.MustRegister(
			p.runsTotal,
			p.runDuration,
			p.processesAlloc,
			p.processesTotal,
			p.internalFragKB,
			p.externalFragKB,
			p.placementsTotal,
			p.placementFragKB,
			p.unallocatedTotal,
			p.cacheLookups,
		)
	})
}

// RecordRunDuration records the wall time of one strategy run.
func (p *PrometheusCollector) RecordRunDuration(strategy string, duration float64) {
	p.ensureRegistered()
	p.runsTotal.WithLabelValues(strategy).Inc()
	p.runDuration.WithLabelValues(strategy).Observe(duration)
}

// RecordRunOutcome records the allocation totals of a completed run.
func (p *PrometheusCollector) RecordRunOutcome(strategy string, allocated, total int) {
	p.ensureRegistered()
	p.processesAlloc.WithLabelValues(strategy).Set(float64(allocated))
	p.processesTotal.WithLabelValues(strategy).Set(float64(total))
}

// RecordFragmentation records the fragmentation aggregates of a run.
func (p *PrometheusCollector) RecordFragmentation(strategy string, internalKB, externalKB int) {
	p.ensureRegistered()
	p.internalFragKB.WithLabelValues(strategy).Set(float64(internalKB))
	p.externalFragKB.WithLabelValues(strategy).Set(float64(externalKB))
}

// RecordPlacement records a successful process placement.
func (p *PrometheusCollector) RecordPlacement(strategy string, internalFragKB int) {
	p.ensureRegistered()
	p.placementsTotal.WithLabelValues(strategy).Inc()
	p.placementFragKB.WithLabelValues(strategy).Observe(float64(internalFragKB))
}

// RecordUnallocated records a process no FREE block could fit.
func (p *PrometheusCollector) RecordUnallocated(strategy string) {
	p.ensureRegistered()
	p.unallocatedTotal.WithLabelValues(strategy).Inc()
}

// RecordCacheLookup records a result cache lookup and whether it hit.
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	p.ensureRegistered()
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}
