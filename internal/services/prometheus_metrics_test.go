package services

import (
	"testing"
	"time"

	"sales-analytics/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := NewPrometheusMetrics(registry)
	metrics := recorder.(*PrometheusMetrics)

	recorder.IncrementCounter(MetricSalesIngested, map[string]string{"status": "success"})
	recorder.IncrementCounter(MetricSalesIngested, map[string]string{"status": "success"})
	recorder.IncrementCounter(MetricSalesIngested, map[string]string{"status": "rejected"})
	recorder.IncrementCounter(MetricSalesIngested, nil)
	recorder.IncrementCounter(MetricTotalsRequest, map[string]string{"source": models.AggregationSourceDatabase, "cache": "hit"})
	recorder.IncrementCounter(MetricRecordsSkipped, nil)
	recorder.IncrementCounter("unknown", nil)
	recorder.RecordGauge(MetricCategoryCount, 4, map[string]string{"source": models.AggregationSourceMemory})
	recorder.RecordGauge(MetricSalesBatchSize, 10, nil)
	recorder.RecordProcessingTime(MetricTotalsDuration+"."+models.AggregationSourceMemory, 3*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.salesIngested.WithLabelValues("success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.salesIngested.WithLabelValues("rejected")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.totalsRequests.WithLabelValues(models.AggregationSourceDatabase, "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.recordsSkipped))
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.categoryCount.WithLabelValues(models.AggregationSourceMemory)))

	count, err := testutil.GatherAndCount(registry, "category_totals_duration_milliseconds", "sales_batch_size")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
