package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger() (SalesLoggerInterface, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewSalesLogger(slog.New(slog.NewJSONHandler(&buf, nil))), &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSalesLogger_CarriesTraceID(t *testing.T) {
	logger, buf := captureLogger()
	ctx := WithTraceID(context.Background(), "trace-123")

	logger.LogSalesRecorded(ctx, 3)

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "sales recorded", entry["msg"])
	assert.Equal(t, "sales_recorded", entry["event_type"])
	assert.Equal(t, float64(3), entry["count"])
	assert.Equal(t, "trace-123", entry["trace_id"])
}

func TestSalesLogger_TotalsComputed(t *testing.T) {
	logger, buf := captureLogger()

	logger.LogTotalsComputed(context.Background(), "database", 2, 5, true, 1500*time.Millisecond)

	entry := decodeLogLine(t, buf)
	assert.Equal(t, "totals_computed", entry["event_type"])
	assert.Equal(t, "database", entry["source"])
	assert.Equal(t, float64(2), entry["category_count"])
	assert.Equal(t, float64(5), entry["record_count"])
	assert.Equal(t, true, entry["cached"])
	assert.Equal(t, float64(1500), entry["duration_ms"])
	assert.Equal(t, "", entry["trace_id"])
}

func TestSalesLogger_WarningEvents(t *testing.T) {
	tests := []struct {
		name      string
		log       func(SalesLoggerInterface)
		eventType string
	}{
		{"rejected", func(l SalesLoggerInterface) { l.LogSalesRejected(context.Background(), 1, "price", "sale price is required") }, "sales_rejected"},
		{"skipped", func(l SalesLoggerInterface) {
			l.LogRecordSkipped(context.Background(), RecordIssue{Index: 2, Field: "quantity", Reason: "sale quantity is required"})
		}, "record_skipped"},
		{"cache failure", func(l SalesLoggerInterface) { l.LogCacheFailure(context.Background(), "get", errors.New("connection refused")) }, "cache_failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()

			tt.log(logger)

			entry := decodeLogLine(t, buf)
			assert.Equal(t, "WARN", entry["level"])
			assert.Equal(t, tt.eventType, entry["event_type"])
		})
	}
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	assert.Equal(t, "abc", TraceIDFromContext(WithTraceID(context.Background(), "abc")))
}
