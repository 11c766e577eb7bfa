package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("records run and placement metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		c := NewPrometheus(reg, "memfit_test")

		c.RecordRunDuration("First Fit", 0.002)
		c.RecordRunOutcome("First Fit", 3, 4)
		c.RecordFragmentation("First Fit", 559, 100)
		c.RecordPlacement("First Fit", 288)
		c.RecordPlacement("First Fit", 88)
		c.RecordUnallocated("First Fit")
		c.RecordCacheLookup(false)
		c.RecordCacheLookup(true)

		require.Equal(t, float64(1),
			testutil.ToFloat64(c.runsTotal.WithLabelValues("First Fit")))
		require.Equal(t, float64(3),
			testutil.ToFloat64(c.processesAlloc.WithLabelValues("First Fit")))
		require.Equal(t, float64(4),
			testutil.ToFloat64(c.processesTotal.WithLabelValues("First Fit")))
		require.Equal(t, float64(559),
			testutil.ToFloat64(c.internalFragKB.WithLabelValues("First Fit")))
		require.Equal(t, float64(100),
			testutil.ToFloat64(c.externalFragKB.WithLabelValues("First Fit")))
		require.Equal(t, float64(2),
			testutil.ToFloat64(c.placementsTotal.WithLabelValues("First Fit")))
		require.Equal(t, float64(1),
			testutil.ToFloat64(c.unallocatedTotal.WithLabelValues("First Fit")))
		require.Equal(t, float64(1),
			testutil.ToFloat64(c.cacheLookups.WithLabelValues("hit")))
		require.Equal(t, float64(1),
			testutil.ToFloat64(c.cacheLookups.WithLabelValues("miss")))
	})

	t.Run("defaults namespace and registerer lazily", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		c := NewPrometheus(reg, "")
		require.Equal(t, "memfit", c.namespace)

		// Registration happens on first record, not at construction.
		require.Nil(t, c.runsTotal)
		c.RecordUnallocated("Best Fit")
		require.NotNil(t, c.runsTotal)
	})
}
