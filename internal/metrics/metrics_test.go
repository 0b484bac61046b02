package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveComputed(75.4, 20)
	m.ObserveComputed(80, 25)
	m.ObserveCacheHit()
	m.ObservePublishError()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EstimatesTotal.WithLabelValues("computed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EstimatesTotal.WithLabelValues("cache")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PublishErrors))

	count, err := testutil.GatherAndCount(reg, "lifeclock_life_expectancy_years")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_PanicsOnDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
