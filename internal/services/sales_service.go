package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sales-analytics/internal/config"
	"sales-analytics/internal/models"
	"sales-analytics/internal/repositories"
)

var (
	ErrEmptyBatch       = errors.New("at least one sale record is required")
	ErrBatchTooLarge    = errors.New("too many sale records in one batch")
	ErrCategoryNotFound = errors.New("no sales recorded for category")
	ErrUnknownSource    = errors.New("unknown aggregation source")
)

type SalesService struct {
	repo          repositories.SaleRepositoryInterface
	cache         TotalsCacheInterface
	metrics       MetricsRecorderInterface
	generator     SaleGeneratorInterface
	logger        SalesLoggerInterface
	policy        InvalidRecordPolicy
	defaultSource string
	maxBatchSize  int
	now           func() time.Time
}

// NewSalesService wires the sales use cases. cache may be nil, in which case
// store-side totals are always recomputed.
func NewSalesService(
	repo repositories.SaleRepositoryInterface,
	cache TotalsCacheInterface,
	metrics MetricsRecorderInterface,
	generator SaleGeneratorInterface,
	cfg *config.AggregationConfig,
) SalesServiceInterface {
	policy, err := ParseInvalidRecordPolicy(cfg.InvalidRecordPolicy)
	if err != nil {
		slog.Warn("unknown invalid record policy, using reject", "policy", cfg.InvalidRecordPolicy)
		policy = InvalidRecordPolicyReject
	}

	defaultSource := cfg.DefaultSource
	if !models.IsValidAggregationSource(defaultSource) {
		defaultSource = models.AggregationSourceMemory
	}

	return &SalesService{
		repo:          repo,
		cache:         cache,
		metrics:       metrics,
		generator:     generator,
		logger:        NewSalesLogger(slog.Default()),
		policy:        policy,
		defaultSource: defaultSource,
		maxBatchSize:  cfg.MaxBatchSize,
		now:           time.Now,
	}
}

// RecordSales validates every record and stores the batch atomically.
// Ingestion is always strict: the first incomplete record rejects the batch.
func (s *SalesService) RecordSales(ctx context.Context, records []models.SaleRecord) (int, error) {
	if len(records) == 0 {
		return 0, ErrEmptyBatch
	}

	if s.maxBatchSize > 0 && len(records) > s.maxBatchSize {
		return 0, fmt.Errorf("%w: %d records, limit %d", ErrBatchTooLarge, len(records), s.maxBatchSize)
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			field := records[i].InvalidField()
			s.metrics.IncrementCounter(MetricSalesIngested, map[string]string{"status": "rejected"})
			s.logger.LogSalesRejected(ctx, i, field, err.Error())
			return 0, &InvalidRecordError{Index: i, Field: field, Err: err}
		}
	}

	if err := s.repo.CreateBatch(ctx, records); err != nil {
		s.metrics.IncrementCounter(MetricSalesIngested, map[string]string{"status": "failed"})
		return 0, fmt.Errorf("failed to store sales: %w", err)
	}

	s.invalidateCache(ctx)

	s.metrics.IncrementCounter(MetricSalesIngested, map[string]string{"status": "success"})
	s.metrics.RecordGauge(MetricSalesBatchSize, float64(len(records)), nil)

	s.logger.LogSalesRecorded(ctx, len(records))

	return len(records), nil
}

func (s *SalesService) ListSales(ctx context.Context, offset, limit int) ([]models.SaleRecord, int64, error) {
	sales, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, total, nil
}

func (s *SalesService) GetCategoryTotals(ctx context.Context, source string) (*models.CategoryTotalsReport, error) {
	if source == "" {
		source = s.defaultSource
	}

	start := s.now()
	var (
		report *models.CategoryTotalsReport
		err    error
	)

	switch source {
	case models.AggregationSourceMemory:
		report, err = s.totalsInMemory(ctx)
	case models.AggregationSourceDatabase:
		report, err = s.totalsInDatabase(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	if err != nil {
		return nil, err
	}

	elapsed := s.now().Sub(start)
	s.metrics.RecordProcessingTime(MetricTotalsDuration+"."+source, elapsed)
	s.metrics.RecordGauge(MetricCategoryCount, float64(len(report.Totals)), map[string]string{"source": source})

	s.logger.LogTotalsComputed(ctx, source, len(report.Totals), report.RecordCount, report.Cached, elapsed)

	return report, nil
}

// totalsInMemory folds every stored record through AggregateByCategory
func (s *SalesService) totalsInMemory(ctx context.Context) (*models.CategoryTotalsReport, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	result, err := s.aggregate(ctx, records, s.policy)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter(MetricTotalsRequest, map[string]string{"source": models.AggregationSourceMemory, "cache": "none"})

	return s.newReport(result.Totals, int64(result.Processed), models.AggregationSourceMemory), nil
}

// totalsInDatabase lets the store group and sum, going through the cache
// when one is configured. Cache failures only cost a recomputation. The
// generation is read before querying the store so a fill that raced with a
// write is dropped by the cache.
func (s *SalesService) totalsInDatabase(ctx context.Context) (*models.CategoryTotalsReport, error) {
	var (
		generation int64
		fill       bool
	)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.LogCacheFailure(ctx, "get", err)
		}
		if cached != nil {
			cached.Cached = true
			s.metrics.IncrementCounter(MetricTotalsRequest, map[string]string{"source": models.AggregationSourceDatabase, "cache": "hit"})
			return cached, nil
		}

		generation, err = s.cache.Generation(ctx)
		if err != nil {
			s.logger.LogCacheFailure(ctx, "generation", err)
		} else {
			fill = true
		}
	}

	totals, err := s.repo.GetCategoryTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category totals: %w", err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}

	report := s.newReport(totals, count, models.AggregationSourceDatabase)

	cacheLabel := "none"
	if s.cache != nil {
		cacheLabel = "miss"
	}
	if fill {
		if err := s.cache.Set(ctx, generation, report); err != nil {
			s.logger.LogCacheFailure(ctx, "set", err)
		}
	}
	s.metrics.IncrementCounter(MetricTotalsRequest, map[string]string{"source": models.AggregationSourceDatabase, "cache": cacheLabel})

	return report, nil
}

func (s *SalesService) GetCategorySales(ctx context.Context, category string) (*models.CategoryTotal, error) {
	records, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for category: %w", err)
	}

	result, err := s.aggregate(ctx, records, s.policy)
	if err != nil {
		return nil, err
	}

	if len(result.Totals) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrCategoryNotFound, category)
	}

	return &result.Totals[0], nil
}

// AggregateRecords aggregates records without touching storage. An empty
// policy uses the configured one.
func (s *SalesService) AggregateRecords(records []models.SaleRecord, policy InvalidRecordPolicy) (*AggregationResult, error) {
	if policy == "" {
		policy = s.policy
	}
	return s.aggregate(context.Background(), records, policy)
}

func (s *SalesService) aggregate(ctx context.Context, records []models.SaleRecord, policy InvalidRecordPolicy) (*AggregationResult, error) {
	result, err := AggregateByCategory(records, policy)
	if err != nil {
		return nil, err
	}

	for _, issue := range result.Skipped {
		s.metrics.IncrementCounter(MetricRecordsSkipped, nil)
		s.logger.LogRecordSkipped(ctx, issue)
	}

	return result, nil
}

// SeedSales stores count generated sales
func (s *SalesService) SeedSales(ctx context.Context, count int) (int, error) {
	return s.RecordSales(ctx, s.generator.Generate(count))
}

// ResetSales deletes every stored sale
func (s *SalesService) ResetSales(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to reset sales: %w", err)
	}

	s.invalidateCache(ctx)

	s.logger.LogSalesReset(ctx, deleted)

	return deleted, nil
}

func (s *SalesService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.LogCacheFailure(ctx, "invalidate", err)
	}
}

func (s *SalesService) newReport(totals []models.CategoryTotal, count int64, source string) *models.CategoryTotalsReport {
	if totals == nil {
		totals = []models.CategoryTotal{}
	}
	return &models.CategoryTotalsReport{
		Totals:      totals,
		GrandTotal:  models.SumTotals(totals),
		RecordCount: count,
		Source:      source,
		GeneratedAt: s.now().UTC(),
	}
}
