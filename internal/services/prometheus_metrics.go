package services

import (
	"time"

	"sales-analytics/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricSalesIngested       = "sales_ingested"
	MetricSalesBatchSize      = "sales_batch_size"
	MetricTotalsRequest       = "category_totals_request"
	MetricTotalsDuration      = "category_totals"
	MetricRecordsSkipped      = "aggregation_records_skipped"
	MetricCategoryCount       = "category_count"
	MetricAuthenticationEvent = "authentication_event"
)

type PrometheusMetrics struct {
	salesIngested        *prometheus.CounterVec
	salesBatchSize       prometheus.Histogram
	totalsRequests       *prometheus.CounterVec
	totalsDuration       *prometheus.HistogramVec
	recordsSkipped       prometheus.Counter
	categoryCount        *prometheus.GaugeVec
	authenticationEvents *prometheus.CounterVec
}

// NewPrometheusMetrics registers the sales collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		salesIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_records_ingested_total",
				Help: "Total number of sale records submitted for storage",
			},
			[]string{"status"},
		),
		salesBatchSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_batch_size",
				Help:    "Number of records per ingested batch",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		totalsRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "category_totals_requests_total",
				Help: "Total number of category totals computations",
			},
			[]string{"source", "cache"},
		),
		totalsDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "category_totals_duration_milliseconds",
				Help:    "Category totals computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"source"},
		),
		recordsSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "aggregation_records_skipped_total",
				Help: "Total number of records left out of an aggregation for missing fields",
			},
		),
		categoryCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sales_category_count",
				Help: "Number of distinct categories in the last computed totals",
			},
			[]string{"source"},
		),
		authenticationEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricSalesIngested:
		if status := tags["status"]; status != "" {
			m.salesIngested.WithLabelValues(status).Inc()
		}
	case MetricTotalsRequest:
		m.totalsRequests.WithLabelValues(tags["source"], tags["cache"]).Inc()
	case MetricRecordsSkipped:
		m.recordsSkipped.Inc()
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricTotalsDuration + "." + models.AggregationSourceMemory:
		m.totalsDuration.WithLabelValues(models.AggregationSourceMemory).Observe(float64(duration.Milliseconds()))
	case MetricTotalsDuration + "." + models.AggregationSourceDatabase:
		m.totalsDuration.WithLabelValues(models.AggregationSourceDatabase).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricSalesBatchSize:
		m.salesBatchSize.Observe(value)
	case MetricCategoryCount:
		if source := tags["source"]; source != "" {
			m.categoryCount.WithLabelValues(source).Set(value)
		}
	}
}
