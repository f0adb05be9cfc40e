package services

import (
	"context"
	"log/slog"
	"time"
)

type traceIDKey struct{}

// WithTraceID stores the request trace ID so service logs can carry it
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

// SalesLogger writes one structured event per sales operation
type SalesLogger struct {
	logger *slog.Logger
}

func NewSalesLogger(logger *slog.Logger) SalesLoggerInterface {
	return &SalesLogger{
		logger: logger,
	}
}

func (sl *SalesLogger) LogSalesRecorded(ctx context.Context, count int) {
	sl.logger.InfoContext(ctx, "sales recorded",
		slog.String("event_type", "sales_recorded"),
		slog.Int("count", count),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (sl *SalesLogger) LogSalesRejected(ctx context.Context, index int, field, reason string) {
	sl.logger.WarnContext(ctx, "sales batch rejected",
		slog.String("event_type", "sales_rejected"),
		slog.Int("index", index),
		slog.String("field", field),
		slog.String("reason", reason),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (sl *SalesLogger) LogTotalsComputed(ctx context.Context, source string, categoryCount int, recordCount int64, cached bool, duration time.Duration) {
	sl.logger.InfoContext(ctx, "category totals computed",
		slog.String("event_type", "totals_computed"),
		slog.String("source", source),
		slog.Int("category_count", categoryCount),
		slog.Int64("record_count", recordCount),
		slog.Bool("cached", cached),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (sl *SalesLogger) LogRecordSkipped(ctx context.Context, issue RecordIssue) {
	sl.logger.WarnContext(ctx, "sale record skipped",
		slog.String("event_type", "record_skipped"),
		slog.Int("index", issue.Index),
		slog.String("field", issue.Field),
		slog.String("reason", issue.Reason),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

// LogCacheFailure records a cache error that was absorbed by recomputing
func (sl *SalesLogger) LogCacheFailure(ctx context.Context, operation string, err error) {
	sl.logger.WarnContext(ctx, "category totals cache failure",
		slog.String("event_type", "cache_failure"),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func (sl *SalesLogger) LogSalesReset(ctx context.Context, deleted int64) {
	sl.logger.InfoContext(ctx, "sales reset",
		slog.String("event_type", "sales_reset"),
		slog.Int64("deleted", deleted),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}
