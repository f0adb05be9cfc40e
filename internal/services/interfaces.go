package services

import (
	"context"
	"time"

	"sales-analytics/internal/models"
)

// SalesServiceInterface defines sale ingestion and category aggregation
type SalesServiceInterface interface {
	RecordSales(ctx context.Context, records []models.SaleRecord) (int, error)
	ListSales(ctx context.Context, offset, limit int) ([]models.SaleRecord, int64, error)

	// GetCategoryTotals computes totals in memory or in the store depending on source.
	// An empty source uses the configured default.
	GetCategoryTotals(ctx context.Context, source string) (*models.CategoryTotalsReport, error)
	GetCategorySales(ctx context.Context, category string) (*models.CategoryTotal, error)

	// AggregateRecords aggregates caller-supplied records without storing them
	AggregateRecords(records []models.SaleRecord, policy InvalidRecordPolicy) (*AggregationResult, error)

	SeedSales(ctx context.Context, count int) (int, error)
	ResetSales(ctx context.Context) (int64, error)
}

// TotalsCacheInterface caches the store-side category totals report.
// Get returns nil, nil on a miss. Set only stores a report when no
// Invalidate happened since Generation returned generation.
type TotalsCacheInterface interface {
	Get(ctx context.Context) (*models.CategoryTotalsReport, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, generation int64, report *models.CategoryTotalsReport) error
	Invalidate(ctx context.Context) error
}

// SaleGeneratorInterface produces fake sales for development data
type SaleGeneratorInterface interface {
	Generate(count int) []models.SaleRecord
}

// TokenServiceInterface issues and verifies bearer tokens for write endpoints
type TokenServiceInterface interface {
	GenerateToken(subject string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// SalesLoggerInterface writes structured events for sales operations
type SalesLoggerInterface interface {
	LogSalesRecorded(ctx context.Context, count int)
	LogSalesRejected(ctx context.Context, index int, field, reason string)
	LogTotalsComputed(ctx context.Context, source string, categoryCount int, recordCount int64, cached bool, duration time.Duration)
	LogRecordSkipped(ctx context.Context, issue RecordIssue)
	LogCacheFailure(ctx context.Context, operation string, err error)
	LogSalesReset(ctx context.Context, deleted int64)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
